package progress

import (
	"github.com/sirupsen/logrus"
)

// Tracker receives progress updates while a sequence of jobs runs.
type Tracker interface {
	SetTotal(total int)
	StartJob(name string)
	JobDone(name string, err error)
	MarkFinished()
}

type NoopTracker struct{}

var _ Tracker = NoopTracker{}

func (n NoopTracker) SetTotal(total int)             {}
func (n NoopTracker) StartJob(name string)           {}
func (n NoopTracker) JobDone(name string, err error) {}
func (n NoopTracker) MarkFinished()                  {}

// LogTracker reports progress through a logrus logger.
type LogTracker struct {
	Log *logrus.Entry

	total  int
	done   int
	failed int
}

var _ Tracker = (*LogTracker)(nil)

func NewLogTracker(log *logrus.Entry) *LogTracker {
	return &LogTracker{Log: log}
}

func (l *LogTracker) SetTotal(total int) {
	l.total = total
}

func (l *LogTracker) StartJob(name string) {
	l.Log.WithFields(logrus.Fields{
		"job":   name,
		"index": l.done + 1,
		"total": l.total,
	}).Debug("starting job")
}

func (l *LogTracker) JobDone(name string, err error) {
	l.done++
	entry := l.Log.WithField("job", name)
	if err != nil {
		l.failed++
		entry.WithError(err).Warn("job failed")
		return
	}
	entry.Info("job finished")
}

func (l *LogTracker) MarkFinished() {
	l.Log.WithFields(logrus.Fields{
		"jobs":   l.done,
		"failed": l.failed,
	}).Info("all jobs finished")
}

// Counts returns how many jobs finished and how many of them failed.
func (l *LogTracker) Counts() (done, failed int) {
	return l.done, l.failed
}
