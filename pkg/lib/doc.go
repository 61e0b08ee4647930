// Package lib provides a Go SDK for tracking print-shop production jobs
// programmatically.
//
// This package allows applications to create, advance and inspect print jobs
// without shelling out to the pressline CLI binary. It is useful for
// scripting, automation, and building tools on top of pressline.
//
// # Quick Start
//
// Create a client, push a job through the workflow and read the board:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a job.
//	job, err := client.CreateJob(ctx, lib.CreateJobOpts{
//	    Client:   "Oxford Press",
//	    Title:    "Advanced Calculus",
//	    Type:     lib.JobTypeAcademic,
//	    Quantity: 2000,
//	})
//
//	// Advance it one step and render the board.
//	client.AdvanceJob(ctx, job.ID)
//	board, _ := client.Dashboard(ctx, nil)
//
// # Storage
//
// By default the client persists to a SQLite database under
// ~/.pressline/pressline.db, shared with the CLI. Set [Config].InMemory for a
// process-local board that vanishes on exit, mirroring the original
// session-only tracker. In-memory mode needs no files at all, which also
// makes it the natural choice for tests.
//
// # Manuscripts
//
// Record manuscript uploads with print options; the job type and quantity are
// derived from the options when not set explicitly:
//
//	resp, _ := client.UploadManuscript(ctx, lib.UploadOpts{
//	    Client: "Oxford Press",
//	    File:   lib.ManuscriptFile{Name: "calculus.pdf", SizeBytes: 1 << 20, MediaType: "application/pdf"},
//	})
//	versions, _ := client.ListVersions(ctx)
//	client.ApproveVersion(ctx, resp.Version.ID)
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Resource does not exist.
//   - [ErrAlreadyExists]: Resource with the same ID or email already exists.
//   - [ErrNotValid]: Invalid input or operation.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. The SQLite
// storage uses WAL mode and the in-memory storage is mutex-guarded.
package lib
