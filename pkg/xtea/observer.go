package xtea

// RoundTrace holds the intermediate values of one encipher round.
// Sum is the accumulator after Delta has been added.
type RoundTrace struct {
	Index int

	W0 uint16
	K0 uint16
	T0 uint16

	High uint16
	Sum  uint16

	W1 uint16
	K1 uint16
	T1 uint16

	Low uint16
}

// Observer receives the intermediate state of an encipher operation.
// It is called once per round and once on completion, and cannot alter the result.
type Observer interface {
	ObserveRound(RoundTrace)
	ObserveDone(Block)
}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil fields are skipped.
type ObserverFuncs struct {
	Round func(RoundTrace)
	Done  func(Block)
}

// ObserveRound implements Observer.
func (o ObserverFuncs) ObserveRound(trace RoundTrace) {
	if o.Round != nil {
		o.Round(trace)
	}
}

// ObserveDone implements Observer.
func (o ObserverFuncs) ObserveDone(block Block) {
	if o.Done != nil {
		o.Done(block)
	}
}

// Recorder is an Observer that keeps every round and the final block.
type Recorder struct {
	Rounds []RoundTrace
	Result Block
	Done   bool
}

// ObserveRound implements Observer.
func (r *Recorder) ObserveRound(trace RoundTrace) {
	r.Rounds = append(r.Rounds, trace)
}

// ObserveDone implements Observer.
func (r *Recorder) ObserveDone(block Block) {
	r.Result = block
	r.Done = true
}
