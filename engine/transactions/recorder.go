package transactions

// Recorder owns a transaction through its lifetime and hands it to a
// Processor exactly once. It exists so that call sites cannot forget which
// processor a transaction was recorded for.
type Recorder struct {
	transaction *Transaction
	processor   Processor
	finished    bool
}

// Record starts a transaction that Finish will hand to the processor.
func Record(processor Processor) *Recorder {
	return &Recorder{
		transaction: New(),
		processor:   processor,
	}
}

// Transaction returns the transaction being recorded.
func (r *Recorder) Transaction() *Transaction {
	return r.transaction
}

// Finish hands the recorded transaction to the processor. Calling Finish a
// second time does nothing.
func (r *Recorder) Finish() {
	if r.finished {
		return
	}
	r.finished = true
	r.processor.Process(r.transaction)
}
