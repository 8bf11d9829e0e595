package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

func main() {
	configFilePath := flag.String("configfile", "", "Configuration File Path")
	logLevel := flag.String("loglevel", "info", "Log level: debug, info, warning, error")
	flag.Parse()

	level, levelErr := log.ParseLevel(*logLevel)
	if levelErr != nil {
		log.Fatal(fmt.Sprintf("Invalid log level %s", *logLevel))
	}
	log.SetLevel(level)

	if *configFilePath == "" {
		log.Fatal("Required flag -configfile not set but required")
	}

	var appConfig AppConfig
	if configErr := configor.Load(&appConfig, *configFilePath); configErr != nil {
		log.Fatal(fmt.Sprintf("Config load error: %s", configErr))
	}
	log.Info("Loaded configuration:")
	for _, configLine := range appConfig.ConfigStringArray() {
		log.Info(configLine)
	}

	bucketClient, clientErr := appConfig.ClientFromConfig()
	if clientErr != nil {
		log.Fatal(clientErr)
	}

	var notifier Notifier
	if appConfig.SNSTopic != "" {
		var notifierErr error
		notifier, notifierErr = NewSNSNotifier(appConfig)
		if notifierErr != nil {
			log.Fatal(fmt.Sprintf("SNS notifier error: %s", notifierErr))
		}
	}

	source, connectErr := ConnectSFTP(appConfig.SFTP)
	if connectErr != nil {
		log.Fatal(fmt.Sprintf("SFTP connection error: %s", connectErr))
	}

	markers := NewMarkerStore(bucketClient, appConfig.Sync.DestinationBucket, appConfig.Sync.MarkerKey)
	result, syncErr := doSync(source, bucketClient, markers, appConfig.Sync)
	source.Close()

	if notifier != nil {
		if notifyErr := notifier.NotifySyncResults(appConfig.Sync, result, syncErr); notifyErr != nil {
			log.Warn(fmt.Sprintf("Notification error: %s", notifyErr))
		}
	}

	log.Info(fmt.Sprintf("Finished: %d files synced, %d bytes total.", result.TransferredCount, result.BytesTransferred))
	if syncErr != nil {
		log.Error(fmt.Sprintf("Sync failed: %s", syncErr))
		os.Exit(1)
	}
	if result.Failed() {
		for _, failed := range result.FailedEntries {
			log.Error(fmt.Sprintf("Failed: %s (%s)", failed.Path, failed.Reason))
		}
		os.Exit(1)
	}
}
