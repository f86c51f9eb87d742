package core

// opLOG implements LOGn: pop(offset, size, topic1..topicn), append a Log
// with data sliced from memory and topics in pop order.
func opLOG(n int) handlerFunc {
	return func(m *Machine) stepOutcome {
		offset, err := m.pop()
		if err != nil {
			return errOutcome(err)
		}
		size, err := m.pop()
		if err != nil {
			return errOutcome(err)
		}
		topics := make([]Word, n)
		for i := 0; i < n; i++ {
			t, err := m.pop()
			if err != nil {
				return errOutcome(err)
			}
			topics[i] = t
		}
		data := m.memory.GetCopy(offset.Uint64(), size.Uint64())
		m.logs = append(m.logs, Log{
			Address: m.ctx.Address,
			Data:    data,
			Topics:  topics,
		})
		return continueOutcome(1)
	}
}
