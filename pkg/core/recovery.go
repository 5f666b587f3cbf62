package core

import "github.com/golang/glog"

// recover restores the protocol bookkeeping after a timeout or a device
// error, dropping any partially reassembled chain. The transport is left
// alone.
func (e *Engine) recover() {
	if e.recovering {
		glog.Warning("recovery already in progress")
		return
	}
	e.recovering = true
	defer func() { e.recovering = false }()

	glog.Info("recovering UCI engine")
	e.timer.Stop()
	for ; e.window < MaxWindow; e.window++ {
		e.releaseSlot()
	}
	e.pending, e.retries = nil, 0
	e.rawCb = nil
	e.ctrlAsm.Reset()
	e.dataAsm.Reset()
	e.stats.Recoveries++

	if h, ok := e.handler.(RecoveryHandler); ok {
		h.HandleRecovery()
	}
}
