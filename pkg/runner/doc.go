/*
Package runner implements the interactive session loop of the console.

A Runner owns the operator's current Position. Each iteration it reads one
line from a LineSource, dispatches it through the awsh.Console, and either
moves, lists the current category, or invokes an action. Recoverable errors
are written to the OutputSink and the loop continues; Ctrl-C cancels only the
pending read; end of input ends the session.

# Key Components

  - Runner: the loop.
  - LineSource: TextSource for any io.Reader, ReadlineSource for terminals.
  - OutputSink: PlainSink here, a styled printer in the tui package.
  - ActionInterceptor: policy run before every action (confirmation).

# Usage

	r := runner.NewRunner(
		runner.WithLineSource(runner.NewTextSource(os.Stdin, os.Stdout)),
		runner.WithOutputSink(runner.NewPlainSink(os.Stdout)),
	)

	if _, err := r.Run(ctx, console); err != nil {
		log.Fatal(err)
	}
*/
package runner
