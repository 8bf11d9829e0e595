package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifySkippedWhenNothingFailed(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	cleanResult := newRunResult()
	cleanResult.SelectedCount = 2
	cleanResult.TransferredCount = 2

	notifyErr := mockNotifier.NotifySyncResults(markerSyncConfig(), cleanResult, nil)

	assert.Nil(t, notifyErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 0)
}

func TestNotifyPublishesFailedEntries(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	failedResult := newRunResult()
	failedResult.SelectedCount = 2
	failedResult.TransferredCount = 1
	failedResult.FailedEntries = []FailedEntry{
		{Path: "sub/b.txt", Reason: "transfer of sub/b.txt failed: write timeout"},
	}
	expectedSubject := "Sync errors: /data -> not-real-bucket"
	expectedMessage := "Path: sub/b.txt\nError: transfer of sub/b.txt failed: write timeout\n\n"

	notifyErr := mockNotifier.NotifySyncResults(markerSyncConfig(), failedResult, nil)

	assert.Nil(t, notifyErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 1)
	assert.Equal(t, expectedSubject, *mockClient.PublishRequests[0].Subject)
	assert.Equal(t, expectedMessage, *mockClient.PublishRequests[0].Message)
}

func TestNotifyPublishesFatalRunError(t *testing.T) {
	mockNotifier := &SNSNotifier{
		Client: NewMockSNSClient(),
		Topic:  "mock-topic",
	}
	abortedResult := newRunResult()
	runErr := &ListingError{Path: "/data/sub", Err: assert.AnError}
	expectedMessage := "Run error: listing /data/sub failed: " + assert.AnError.Error() + "\n\n"

	notifyErr := mockNotifier.NotifySyncResults(markerSyncConfig(), abortedResult, runErr)

	assert.Nil(t, notifyErr)
	mockClient := mockNotifier.Client.(*MockSNSClient)
	assert.Len(t, mockClient.PublishRequests, 1)
	assert.Equal(t, expectedMessage, *mockClient.PublishRequests[0].Message)
}
