package statusscreen

import (
	"sort"
	"time"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/syncutils"
)

// StatusMessage is the most recent log line emitted by a single source.
type StatusMessage struct {
	Source   string
	LogLevel logger.Level
	Message  string
	Time     time.Time
}

var (
	statusMessages = make(map[string]*StatusMessage)
	messageMutex   syncutils.RWMutex
)

// logEventClosure mirrors every log message into the status screen.
// Capturing log events requires logger.disableEvents=false in the config.
var logEventClosure = event.NewClosure(func(logEvent *logger.LogEvent) {
	storeStatusMessage(logEvent.Level, logEvent.Name, logEvent.Msg)
})

func storeStatusMessage(logLevel logger.Level, name string, msg string) {
	messageMutex.Lock()
	defer messageMutex.Unlock()

	// replace instead of mutating, older entries may still be visible to the UI
	statusMessages[name] = &StatusMessage{
		Source:   name,
		LogLevel: logLevel,
		Message:  msg,
		Time:     time.Now(),
	}
}

func currentStatusMessages() []*StatusMessage {
	messageMutex.RLock()
	defer messageMutex.RUnlock()

	messages := make([]*StatusMessage, 0, len(statusMessages))
	for _, statusMessage := range statusMessages {
		messages = append(messages, statusMessage)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Source < messages[j].Source
	})

	return messages
}
