package bench

// ListenerLike receives arena progress. Workers call it concurrently, so
// implementations must be safe for concurrent use.
type ListenerLike interface {
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
