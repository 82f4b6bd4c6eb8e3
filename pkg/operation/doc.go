/*
Package operation implements the copy operation: attempt, contain, report.

	+-------------+      +-------------+      +-------------+
	|   Runner    | ---> |  Operation  | ---> |   Copier    |
	| (exit rule) |      |  (report)   |      | (metadata)  |
	+-------------+      +------+------+      +-------------+
	                            |
	                     +------+------+
	                     |  log.Logger |
	                     | (one line)  |
	                     +-------------+

🎯 Purpose:
- Copies the configured source onto the configured destination
- Turns every failure into a single printed line
- Leaves the exit status decision to the Runner

🔄 Flow:
1. Runner starts the operation
2. Operation expands the source pattern when Glob is set, then calls the Copier
3. The Outcome prints its line through the logger carried by the context
4. A strict Runner maps a failed Outcome to ErrCopyFailed

🔍 Example:

	ctx = log.NewContext(ctx, logger)
	op, err := operation.NewCopyOperation(operation.Options{
		Config: cfg,
	})
	if err != nil {
		return err
	}
	outcome, err := operation.NewRunner(logger.Zerolog(), cfg.Strict).Run(ctx, op)
*/
package operation
