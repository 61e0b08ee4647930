package lib_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/makspress/pressline/pkg/lib"
)

// This example shows how to create an in-memory client for testing.
func Example_testing() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{InMemory: true})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Create a job.
	job, err := client.CreateJob(ctx, lib.CreateJobOpts{
		Client:   "Oxford Press",
		Title:    "Advanced Calculus",
		Type:     lib.JobTypeAcademic,
		Quantity: 2000,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Created: %s for %s (stage %d)\n", job.Title, job.Client, job.Stage)

	// Output:
	// Created: Advanced Calculus for Oxford Press (stage 0)
}

// This example shows a job moving through the workflow step by step.
func Example_workflow() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{InMemory: true})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	job, err := client.CreateJob(ctx, lib.CreateJobOpts{Client: "Faber", Title: "Poems"})
	if err != nil {
		panic(err)
	}

	// Two advances cross the first stage boundary.
	res, _ := client.AdvanceJob(ctx, job.ID)
	fmt.Printf("1. %s / %s\n", res.Stage, res.SubStep)
	res, _ = client.AdvanceJob(ctx, job.ID)
	fmt.Printf("2. %s / %s\n", res.Stage, res.SubStep)

	// Output:
	// 1. Manuscript / Proofread
	// 2. Prepress / Imposition
}

// This example shows how to read the board with a filter. Counters always
// cover the whole store, only the rows narrow.
func ExampleClient_Dashboard() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{InMemory: true})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	_, _ = client.CreateJob(ctx, lib.CreateJobOpts{Client: "Oxford Press", Title: "Advanced Calculus", Type: lib.JobTypeAcademic})
	_, _ = client.CreateJob(ctx, lib.CreateJobOpts{Client: "Faber", Title: "Poems", Type: lib.JobTypeTrade})

	board, err := client.Dashboard(ctx, &lib.ListJobsOpts{Type: lib.JobTypeTrade})
	if err != nil {
		panic(err)
	}

	fmt.Printf("total: %d, rows: %d\n", board.Counters.TotalJobs, len(board.Rows))

	// Output:
	// total: 2, rows: 1
}

// This example shows a custom stage catalog.
func ExampleConfig() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{
		InMemory: true,
		Stages: []lib.Stage{
			{Name: "Design", SubSteps: []string{"Draft", "Review"}},
			{Name: "Print", SubSteps: []string{"Setup", "Run"}},
			{Name: "Ship"},
		},
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	board, _ := client.Dashboard(ctx, nil)
	fmt.Println(board.StageNames)

	// Output:
	// [Design Print Ship]
}

// This example shows how to handle SDK errors using errors.Is.
func Example_errorHandling() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{InMemory: true})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Advance a non-existent job.
	_, err = client.AdvanceJob(ctx, "JOB-DOES-NOT-EXIST")
	if errors.Is(err, lib.ErrNotFound) {
		fmt.Println("job not found (expected)")
	}

	// Create a job without a client name.
	_, err = client.CreateJob(ctx, lib.CreateJobOpts{Title: "Untitled"})
	if errors.Is(err, lib.ErrNotValid) {
		fmt.Println("invalid job (expected)")
	}

	// Register the same email twice.
	_, _ = client.Register(ctx, "Ada", "ada@press.test", "hunter2")
	_, err = client.Register(ctx, "Ada", "ada@press.test", "hunter2")
	if errors.Is(err, lib.ErrAlreadyExists) {
		fmt.Println("duplicate email (expected)")
	}

	// Output:
	// job not found (expected)
	// invalid job (expected)
	// duplicate email (expected)
}
