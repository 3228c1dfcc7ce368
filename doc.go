// Package drainly provides a weight-budgeted stored-task executor for
// deterministic, turn-based hosts.
//
// Hosts enqueue serializable tasks, persist the executor between turns and
// drain it incrementally, one single pass per turn, under a per-execution
// weight quota.  The root package is a façade over the building blocks:
//
//   - task     – the contract a unit of deferred work implements
//   - weight   – the saturating budget scalar
//   - quota    – per-execution cap providers
//   - executor – the single-pass container and strategy seam
//   - storage  – persistence with append and length-probe fast paths
//   - event    – opt-in diagnostics for executed passes
//
// Typical embedding:
//
//	store := memory.New()
//	srv := drainly.New[Countdown](store, quota.Fixed(20))
//	_ = srv.Add(ctx, "jobs", Countdown{Remaining: 100})
//	consumed, _ := srv.Run(ctx, "jobs")
//
// where Countdown is any type satisfying the task contract (see
// examples/drain for a complete implementation).
//
// Each Run loads the executor under the key, drains it once and persists
// the survivors; with configured storage costs the returned weight also
// charges the read and the write of the enclosing mutate.
package drainly
