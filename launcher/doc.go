// Package launcher runs the fta analyzer binary that matches the host, or an
// explicitly chosen target, and returns what it printed.
//
// Two call shapes share one mechanism. Run takes a project path and Options
// and builds the argument list itself; Exec forwards a raw argument list
// exactly as given. Both resolve the binary, mark it executable on POSIX
// systems and block until the child exits:
//
//	out, err := launcher.Run(ctx, "./src", launcher.Options{JSON: true})
//	if err != nil {
//		var procErr *launcher.ProcessError
//		if errors.As(err, &procErr) {
//			log.Fatalf("fta exited %d: %s", procErr.ExitCode, procErr.Stderr)
//		}
//		log.Fatal(err)
//	}
//
// Nothing is cached between calls and no environment variables or config
// files are read; everything comes in through Config.
package launcher
