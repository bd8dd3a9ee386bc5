//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-tool-go/log"
)

// run calls task(i) for every i in [0, n) on a pool bounded by the
// configured concurrency and waits for all of them. A panicking task is
// logged and re-raised.
func (s *ToolSet) run(n int, task func(i int)) error {
	if n == 0 {
		return nil
	}
	size := min(s.opts.concurrency, n)
	pool, err := ants.NewPool(size, ants.WithPanicHandler(func(p any) {
		log.Errorf("tool: task panicked: %v", p)
		panic(p)
	}))
	if err != nil {
		return fmt.Errorf("create tool pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task(i)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit tool task: %w", err)
		}
	}
	wg.Wait()
	return nil
}
