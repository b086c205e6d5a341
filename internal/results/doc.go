// Package results reads defect trial results files and extracts the
// deletion order recorded for a trial.
//
// A results file is a JSON object whose "trials" field lists one record per
// trial. Each trial's steps.deleted field lists the nodes deleted at every
// step, starting with an empty list for the initial state:
//
//	{"trials": [{"steps": {"deleted": [[], ["a"], ["b", "c"]]}}]}
package results
