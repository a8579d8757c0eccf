package dummymail

import (
	"log"
	"sync"

	"github.com/trezcool/ratiba/core"
)

var (
	SentMessages = make([]core.EmailMessage, 0)
	mu           sync.Mutex
)

// ClearSentMessages resets the recorded messages between tests.
func ClearSentMessages() {
	mu.Lock()
	defer mu.Unlock()
	SentMessages = SentMessages[:0]
}

type service struct{}

var _ core.EmailService = (*service)(nil)

// NewService returns an EmailService that only records messages,
// synchronously, for tests to inspect.
func NewService() core.EmailService {
	return &service{}
}

func (svc service) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		if err := msg.Render(); err != nil {
			log.Print(err)
			continue
		}
		if msg.HasRecipients() && msg.HasContent() {
			mu.Lock()
			SentMessages = append(SentMessages, *msg)
			mu.Unlock()
		}
	}
}
