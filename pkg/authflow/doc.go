// Package authflow implements the identity and session resolution pipeline:
// the sequencing, state, and failure handling of establishing who the
// current user is, what they can do, and where they should land after
// signing in.
//
// # Architecture
//
// The pipeline is built from small stages around one shared State container:
//
//   - Pipeline observes the backend session stream and, per emission,
//     resolves claims from a fresh identity token and loads the matching
//     profile record from the document store.
//   - SignInService drives interactive sign-in attempts, recovering from the
//     credential-conflict case by parking the failing credential as a
//     pending link until the user re-authenticates with their original
//     provider.
//   - Router performs the single post-authentication navigation, with a
//     stored deep-link target taking precedence over role-based landings.
//
// Each stage writes only its own field group into State, and derived writes
// are tagged with the generation they started from: a commit is dropped when
// a newer upstream value has already been committed, so a slow in-flight
// computation can never overwrite fresher data.
//
// # Wiring
//
//	state := authflow.NewState()
//	router := authflow.NewRouter(deeplinkStore, nav)
//	pipeline := authflow.NewPipeline(backend, state, docs)
//	signin := authflow.NewSignInService(backend, state, router,
//		authflow.WithSignInNotifier(notifier.NewSlog(log)),
//	)
//
//	go pipeline.Run(ctx)
//	ok, err := signin.SignIn(ctx, provider.NewGoogle(googleCfg))
//
// All failures short of transport faults are recovered locally: token and
// profile failures surface as nil state, sign-in failures as notifications.
// Nothing in this package terminates the process.
package authflow
