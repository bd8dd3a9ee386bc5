//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool_test

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-tool-go/tool"
)

type OperationArgs struct {
	X int `json:"x" jsonschema:"description=The first number"`
	Y int `json:"y" jsonschema:"description=The second number"`
}

type Adder struct{}

func (Adder) Name() string { return "add" }

func (Adder) Definition(context.Context, string) tool.Definition {
	return tool.MustDefinition("add", "Add x and y together", tool.SchemaFor[OperationArgs]())
}

func (Adder) Call(_ context.Context, args OperationArgs) (int, error) {
	return args.X + args.Y, nil
}

type Subtract struct{}

func (Subtract) Name() string { return "subtract" }

func (Subtract) Definition(context.Context, string) tool.Definition {
	return tool.MustDefinition("subtract", "Subtract y from x (i.e.: x - y)", tool.SchemaFor[OperationArgs]())
}

func (Subtract) Call(_ context.Context, args OperationArgs) (int, error) {
	return args.X - args.Y, nil
}

func Example() {
	set := tool.NewBuilder(tool.WithCallLogging(false)).
		StaticTool(tool.Erase[OperationArgs, int](Adder{})).
		StaticTool(tool.Erase[OperationArgs, int](Subtract{})).
		Build()

	ctx := context.Background()
	out, err := set.Call(ctx, "add", `{"x":2,"y":3}`)
	fmt.Println(out, err)

	_, err = set.Call(ctx, "add", `{"x":2}`)
	fmt.Println(errors.Is(err, tool.ErrJSON))

	_, err = set.Call(ctx, "multiply", `{"x":2,"y":3}`)
	fmt.Println(err)
	// Output:
	// 5 <nil>
	// true
	// tool not found: multiply
}

func ExampleToolSet_Documents() {
	set := tool.NewToolSet(tool.WithCallLogging(false))
	set.AddTool(tool.Erase[OperationArgs, int](Subtract{}))
	set.AddTool(tool.Erase[OperationArgs, int](Adder{}))

	docs, err := set.Documents(context.Background())
	if err != nil {
		panic(err)
	}
	for _, doc := range docs {
		fmt.Println(doc.ID)
	}
	// Output:
	// add
	// subtract
}
