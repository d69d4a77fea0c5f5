package pubsub

// Outcome records the delivery result for one subscriber in one dispatch.
// Every subscriber present in a dispatch snapshot gets exactly one Outcome,
// whether its callback succeeded, returned an error, or panicked.
type Outcome struct {
	SubscriberID string // Stable ID of the attempted subscriber
	Err          error  // nil on successful delivery
}

// Delivered reports whether the subscriber processed the event without error.
func (o Outcome) Delivered() bool {
	return o.Err == nil
}

// Failed returns the failed outcomes from a dispatch result.
// Producers that want all-or-nothing semantics inspect this themselves;
// the publisher never re-raises subscriber failures.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
