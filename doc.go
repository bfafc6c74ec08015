// Package banditpam implements bandit-accelerated k-medoids clustering.
// Build an Estimator with New, then call Fit with a dataset and a loss
// name:
//
//	est, err := banditpam.New(3, banditpam.WithSeed(7)).Build()
//	if err != nil {
//	    // handle invalid configuration
//	}
//	defer est.Close()
//	if err := est.Fit(ctx, ds, "L2"); err != nil {
//	    // handle invalid shape or loss
//	}
//	medoids := est.MFinal()
//
// Fit runs BUILD (greedy medoid insertion) followed by SWAP (iterative
// medoid replacement). With the default "BanditPAM" algorithm both
// phases pick their winning candidate via a multi-armed-bandit UCB
// elimination loop (package ucb) instead of scoring every candidate
// against every point; "naive" runs the exact O(kn^2) reference
// algorithm instead, at the cost of runtime.
package banditpam
