package calcsend

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/einherij/vector2/pkg/calculator"
	"github.com/einherij/vector2/pkg/wsclient"
)

// Sender periodically reports how many commands the calculator answered.
type Sender struct {
	messenger calculator.Messenger
	calc      *calculator.Calculator
	interval  time.Duration
}

func New(messenger calculator.Messenger, calc *calculator.Calculator, interval time.Duration) *Sender {
	return &Sender{
		messenger: messenger,
		calc:      calc,
		interval:  interval,
	}
}

func (s *Sender) Run(ctx context.Context) {
	logrus.Warnf("started calc status sender")
	statusTicker := time.NewTicker(s.interval)
	defer statusTicker.Stop()
	for {
		select {
		case <-statusTicker.C:
			s.messenger.SendMessage(wsclient.Message{
				Type:    wsclient.MTLog,
				Content: []byte(fmt.Sprintf("evaluated %d commands", s.calc.Evaluated())),
			})
		case <-ctx.Done():
			logrus.Warnf("stopped calc status sender")
			return
		}
	}
}
