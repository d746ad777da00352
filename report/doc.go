// Package report is the consuming boundary for classified errors.
//
// A Reporter always logs the diagnostic rendering of an error and, unless the
// error is silent, hands the end-user rendering to a Presenter:
//
//	r := report.NewReporter(
//	    report.WithLogger(report.NewLogger(report.DefaultLogConfig())),
//	    report.WithPresenter(report.NewConsolePresenter(os.Stderr)),
//	)
//	if err := fsys.WriteFile("sstates/slot1.p2s", data, 0o644); err != nil {
//	    _ = r.Report(ctx, err)
//	}
//
// Deciding whether an error is fatal stays with the caller.
package report
