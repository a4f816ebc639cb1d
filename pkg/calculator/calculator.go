package calculator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/einherij/vector2/pkg/vector"
	"github.com/einherij/vector2/pkg/wsclient"
)

//go:generate mockgen -source=calculator.go -destination=mocks/messenger.go -package=mocks

// Messenger is the message transport the calculator answers on.
type Messenger interface {
	SendMessage(message wsclient.Message)
	ReceiveMessage(ctx context.Context) wsclient.Message
}

type Calculator struct {
	messenger Messenger
	evaluated atomic.Uint64
}

func New(messenger Messenger) *Calculator {
	return &Calculator{
		messenger: messenger,
	}
}

func (c *Calculator) Run(ctx context.Context) {
	logrus.Warnf("started vector calculator")
	for {
		select {
		case <-ctx.Done():
			logrus.Warnf("stopped vector calculator")
			return
		default:
			msg := c.messenger.ReceiveMessage(ctx)
			if msg.Type != wsclient.MTCmd {
				continue
			}
			result, err := Evaluate(string(msg.Content))
			if err != nil {
				logrus.Warnf("error evaluating command %q: %v", msg.Content, err)
				c.messenger.SendMessage(wsclient.Message{
					Type:    wsclient.MTLog,
					Content: []byte(err.Error()),
				})
				continue
			}
			c.evaluated.Add(1)
			c.messenger.SendMessage(wsclient.Message{
				Type:    wsclient.MTResult,
				Content: []byte(result),
			})
		}
	}
}

// Evaluated reports how many commands were answered with a result.
func (c *Calculator) Evaluated() uint64 {
	return c.evaluated.Load()
}

// Evaluate computes a single whitespace-separated command line:
//
//	add e0 e1 f0 f1
//	sub e0 e1 f0 f1
//	neg e0 e1
//	dot e0 e1 f0 f1
//	scale e0 e1 s
//	get e0 e1 i
func Evaluate(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}
	op, args := fields[0], fields[1:]
	switch op {
	case "add":
		a, b, err := twoVectors(args)
		if err != nil {
			return "", err
		}
		return formatVector(a.Add(b)), nil
	case "sub":
		a, b, err := twoVectors(args)
		if err != nil {
			return "", err
		}
		return formatVector(a.Sub(b)), nil
	case "neg":
		e, err := scalars(args, 2)
		if err != nil {
			return "", err
		}
		return formatVector(vector.New(e[0], e[1]).Neg()), nil
	case "dot":
		a, b, err := twoVectors(args)
		if err != nil {
			return "", err
		}
		return formatScalar(a.Dot(b)), nil
	case "scale":
		e, err := scalars(args, 3)
		if err != nil {
			return "", err
		}
		return formatVector(vector.New(e[0], e[1]).Scale(e[2])), nil
	case "get":
		if len(args) != 3 {
			return "", fmt.Errorf("expected 3 arguments, got %d", len(args))
		}
		e, err := scalars(args[:2], 2)
		if err != nil {
			return "", err
		}
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return "", fmt.Errorf("error converting string to int: %q", args[2])
		}
		// Get panics on a bad index, so bounds are checked here first.
		if index != vector.E0 && index != vector.E1 {
			return "", fmt.Errorf("index out of bounds: the len is 2 but the index is %d", index)
		}
		return formatScalar(vector.New(e[0], e[1]).Get(index)), nil
	default:
		return "", fmt.Errorf("unknown command %q", op)
	}
}

func twoVectors(args []string) (a, b vector.Vector2[float64], err error) {
	e, err := scalars(args, 4)
	if err != nil {
		return a, b, err
	}
	return vector.New(e[0], e[1]), vector.New(e[2], e[3]), nil
}

func scalars(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d scalars, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("error converting string to float: %q", a)
		}
		out[i] = f
	}
	return out, nil
}

func formatVector(v vector.Vector2[float64]) string {
	return fmt.Sprintf("%g %g", v.Get(vector.E0), v.Get(vector.E1))
}

func formatScalar(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
