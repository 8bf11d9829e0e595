package main

type Notifier interface {
	NotifySyncResults(SyncConfig, *RunResult, error) error
}
