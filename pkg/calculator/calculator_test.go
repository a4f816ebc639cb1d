package calculator

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/einherij/vector2/pkg/calculator/mocks"
	"github.com/einherij/vector2/pkg/wsclient"
)

type CalculatorSuite struct {
	suite.Suite
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

func (s *CalculatorSuite) TestEvaluate() {
	for _, tc := range []struct {
		cmd  string
		want string
	}{
		{"add 2 6 4 8", "6 14"},
		{"sub 7 8 2 9", "5 -1"},
		{"neg 1 -1", "-1 1"},
		{"dot 2 3 4 5", "23"},
		{"scale 1 2 2", "2 4"},
		{"get 1 2 0", "1"},
		{"get 1 2 1", "2"},
		{"scale 0.5 -0.25 4", "2 -1"},
	} {
		result, err := Evaluate(tc.cmd)
		s.NoError(err, tc.cmd)
		s.Equal(tc.want, result, tc.cmd)
	}
}

func (s *CalculatorSuite) TestEvaluateErrors() {
	for _, cmd := range []string{
		"",
		"   ",
		"norm 1 2",
		"add 1 2 3",
		"neg 1 2 3",
		"scale one 2 3",
		"get 1 2 x",
	} {
		_, err := Evaluate(cmd)
		s.Error(err, cmd)
	}
}

func (s *CalculatorSuite) TestEvaluateGetOutOfBounds() {
	_, err := Evaluate("get 1 2 2")
	s.EqualError(err, "index out of bounds: the len is 2 but the index is 2")

	_, err = Evaluate("get 1 2 -1")
	s.EqualError(err, "index out of bounds: the len is 2 but the index is -1")
}

func (s *CalculatorSuite) TestRun() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := mocks.NewMockMessenger(ctrl)
	gomock.InOrder(
		m.EXPECT().ReceiveMessage(gomock.Any()).Return(wsclient.Message{
			Type:    wsclient.MTCmd,
			Content: []byte("dot 2 3 4 5"),
		}),
		m.EXPECT().SendMessage(wsclient.Message{
			Type:    wsclient.MTResult,
			Content: []byte("23"),
		}).Do(func(wsclient.Message) { cancel() }),
	)
	m.EXPECT().ReceiveMessage(gomock.Any()).DoAndReturn(func(ctx context.Context) wsclient.Message {
		<-ctx.Done()
		return wsclient.Message{}
	}).AnyTimes()

	c := New(m)
	c.Run(ctx)
	s.EqualValues(1, c.Evaluated())
}

func (s *CalculatorSuite) TestRunBadCommand() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := mocks.NewMockMessenger(ctrl)
	gomock.InOrder(
		m.EXPECT().ReceiveMessage(gomock.Any()).Return(wsclient.Message{
			Type:    wsclient.MTCmd,
			Content: []byte("cross 1 2 3 4"),
		}),
		m.EXPECT().SendMessage(wsclient.Message{
			Type:    wsclient.MTLog,
			Content: []byte(`unknown command "cross"`),
		}).Do(func(wsclient.Message) { cancel() }),
	)
	m.EXPECT().ReceiveMessage(gomock.Any()).DoAndReturn(func(ctx context.Context) wsclient.Message {
		<-ctx.Done()
		return wsclient.Message{}
	}).AnyTimes()

	c := New(m)
	c.Run(ctx)
	s.EqualValues(0, c.Evaluated())
}
