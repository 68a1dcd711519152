package goal

import (
	"bytes"
	"encoding/binary"
	"errors"

	"goalvault/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeBytes mirrors writeString for raw byte blobs like public keys.
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readBytes() ([]byte, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(l) > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	b := make([]byte, l)
	copy(b, r.data[r.pos:r.pos+int(l)])
	r.pos += int(l)
	return b, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return sdk.Address(s), nil
}

func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return sdk.Asset(s), nil
}

// EncodeGoal serializes a goal into deterministic bytes for contract storage.
// Example payload: EncodeGoal(&Goal{ID: 7, Owner: "hive:alice", Stake: FloatToAmount(0.1)})
func EncodeGoal(g *Goal) []byte {
	w := newWriter()
	w.writeUint64(g.ID)
	w.writeAddress(g.Owner)
	w.writeAmount(g.Stake)
	w.writeInt64(g.Deadline)
	w.writeInt64(g.CreatedAt)
	w.buf.WriteByte(g.Score)
	w.writeBool(g.Scored)
	w.buf.WriteByte(byte(g.Status))
	w.buf.WriteByte(byte(g.Category))
	w.writeString(g.Description)
	w.writeString(g.ProofRef)
	w.writeString(g.Tx)
	return w.bytes()
}

// DecodeGoal lets off-chain tools read stored goals without reimplementing the codec.
// Example payload: DecodeGoal(EncodeGoal(&Goal{ID: 42}))
func DecodeGoal(data []byte) (*Goal, error) {
	r := newReader(data)
	g := &Goal{}
	var err error
	if g.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if g.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if g.Stake, err = r.readAmount(); err != nil {
		return nil, err
	}
	if g.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if g.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if g.Score, err = r.readByte(); err != nil {
		return nil, err
	}
	if g.Scored, err = r.readBool(); err != nil {
		return nil, err
	}
	statusByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	g.Status = Status(statusByte)
	catByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	g.Category = Category(catByte)
	if g.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if g.ProofRef, err = r.readString(); err != nil {
		return nil, err
	}
	if g.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return g, nil
}

// EncodeVoteTally persists the running vote counters for a disputed goal.
// Example payload: EncodeVoteTally(&VoteTally{GoalID: 3, YesCount: 2})
func EncodeVoteTally(v *VoteTally) []byte {
	w := newWriter()
	w.writeUint64(v.GoalID)
	w.writeUint64(v.YesCount)
	w.writeUint64(v.NoCount)
	w.writeInt64(v.VotingEndsAt)
	w.writeBool(v.Resolved)
	w.writeBool(v.Outcome)
	return w.bytes()
}

// DecodeVoteTally reverses EncodeVoteTally.
// Example payload: DecodeVoteTally(EncodeVoteTally(&VoteTally{GoalID: 3}))
func DecodeVoteTally(data []byte) (*VoteTally, error) {
	r := newReader(data)
	v := &VoteTally{}
	var err error
	if v.GoalID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.YesCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.NoCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.VotingEndsAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if v.Resolved, err = r.readBool(); err != nil {
		return nil, err
	}
	if v.Outcome, err = r.readBool(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeStreak stores the two streak counters for an owner.
// Example payload: EncodeStreak(&Streak{Current: 2, Highest: 5})
func EncodeStreak(s *Streak) []byte {
	w := newWriter()
	w.writeUint64(s.Current)
	w.writeUint64(s.Highest)
	return w.bytes()
}

// DecodeStreak reverses EncodeStreak.
// Example payload: DecodeStreak(EncodeStreak(&Streak{Current: 1}))
func DecodeStreak(data []byte) (*Streak, error) {
	r := newReader(data)
	s := &Streak{}
	var err error
	if s.Current, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.Highest, err = r.readUint64(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeLedgerConfig serializes the scalar contract configuration.
// Example payload: EncodeLedgerConfig(&LedgerConfig{Admin: "hive:admin", ShareBps: 5000})
func EncodeLedgerConfig(cfg *LedgerConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeAddress(cfg.Oracle)
	w.buf.WriteByte(byte(cfg.OracleMode))
	w.writeBytes(cfg.OraclePubKey)
	w.writeAmount(cfg.MinStake)
	w.writeUint64(cfg.VotingPeriodHours)
	w.writeAddress(cfg.Beneficiary)
	w.writeUint64(cfg.ShareBps)
	w.writeString(cfg.BadgeContract)
	w.writeAsset(cfg.StakeAsset)
	return w.bytes()
}

// DecodeLedgerConfig reverses EncodeLedgerConfig.
// Example payload: DecodeLedgerConfig(EncodeLedgerConfig(&LedgerConfig{ShareBps: 100}))
func DecodeLedgerConfig(data []byte) (*LedgerConfig, error) {
	r := newReader(data)
	cfg := &LedgerConfig{}
	var err error
	if cfg.Admin, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Oracle, err = r.readAddress(); err != nil {
		return nil, err
	}
	modeByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	cfg.OracleMode = OracleMode(modeByte)
	if cfg.OraclePubKey, err = r.readBytes(); err != nil {
		return nil, err
	}
	if cfg.MinStake, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.VotingPeriodHours, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.Beneficiary, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.ShareBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.BadgeContract, err = r.readString(); err != nil {
		return nil, err
	}
	if cfg.StakeAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeTotals persists the running fund counters.
// Example payload: EncodeTotals(&Totals{Staked: FloatToAmount(1)})
func EncodeTotals(t *Totals) []byte {
	w := newWriter()
	w.writeAmount(t.Staked)
	w.writeAmount(t.Deposited)
	w.writeAmount(t.Withdrawn)
	w.writeAmount(t.Donated)
	w.writeAmount(t.Stranded)
	return w.bytes()
}

// DecodeTotals reverses EncodeTotals.
// Example payload: DecodeTotals(EncodeTotals(&Totals{}))
func DecodeTotals(data []byte) (*Totals, error) {
	r := newReader(data)
	t := &Totals{}
	var err error
	if t.Staked, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.Deposited, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.Withdrawn, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.Donated, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.Stranded, err = r.readAmount(); err != nil {
		return nil, err
	}
	return t, nil
}
