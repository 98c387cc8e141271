package parallel

import "sync"

// Map applies fn to every input on a bounded pool and returns the outputs in
// input order. Each input is independent; fn must not touch shared state.
func Map[In, Out any](workers int, inputs []In, fn func(In) Out) ([]Out, error) {
	pool, err := NewWorkerPool(workers)
	if err != nil {
		return nil, err
	}

	outputs := make([]Out, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		i := i
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			outputs[i] = fn(inputs[i])
		})
	}
	wg.Wait()
	pool.Close()
	return outputs, nil
}
