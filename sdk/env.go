package sdk

// Intent is a signed allowance attached to the transaction, e.g. transfer.allow.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender identifies the account that signed the transaction.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller identifies the immediate caller, which differs from Sender when
// another contract invokes us.
type Caller struct {
	Address Address `json:"id"`
}

// Env is the execution environment snapshot the host hands to the contract.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
	Payer       Address  `json:"msg.payer"`
	Intents     []Intent `json:"intents"`
}

// ContractCallOptions carries optional intents forwarded on cross-contract calls.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
