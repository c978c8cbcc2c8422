/*
File    : minipar/internal/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/internal/channel"
	"github.com/minipar-lang/minipar/internal/eval"
	"github.com/minipar-lang/minipar/internal/parser"
)

func run(t *testing.T, src string) string {
	t.Helper()
	module, err := parser.Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := eval.New()
	ev.SetWriter(&buf)
	require.NoError(t, ev.Run(module))
	return buf.String()
}

func TestEval_Countdown(t *testing.T) {
	out := run(t, `
i: number = 3
while (i > 0) {
  print(i)
  i = i - 1
}
`)
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestEval_ClosureCapturesEnvironmentByReference(t *testing.T) {
	out := run(t, `
counter: number = 0
func bump() -> number {
  counter = counter + 1
  return counter
}
print(bump())
counter = 100
print(bump())
`)
	assert.Equal(t, "1\n101\n", out)
}

func TestEval_StringConcatenation(t *testing.T) {
	out := run(t, `
a: string = "foo"
b: string = "bar"
print(a + b)
`)
	assert.Equal(t, "foobar\n", out)
}

func TestEval_ParBlockRunsAllChildrenBeforeFailurePropagates(t *testing.T) {
	module, err := parser.Parse(`
par {
  seq {
    x: number = 1 / 0
  }
  seq {
    y: number = 1
    print(y)
  }
}
`)
	require.NoError(t, err)

	ev := eval.New()
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	err = ev.Run(module)
	assert.Error(t, err)
	assert.Equal(t, "1\n", buf.String(), "the sibling child must finish before the failure propagates")
}

func TestEval_ShortCircuitNeverEvaluatesRightOperand(t *testing.T) {
	out := run(t, `
func explode() -> bool {
  x: number = 1 / 0
  return true
}
if (false && explode()) {
  print("unreachable")
} else {
  print("short-circuited")
}
if (true || explode()) {
  print("short-circuited")
}
`)
	assert.Equal(t, "short-circuited\nshort-circuited\n", out)
}

func TestEval_FuncDefaultParameterAppliesWhenOmitted(t *testing.T) {
	out := run(t, `
func greet(name: string, punctuation: string = "!") -> string {
  return name + punctuation
}
print(greet("hi"))
print(greet("hi", "?"))
`)
	assert.Equal(t, "hi!\nhi?\n", out)
}

// Two sibling seq blocks under one par each declare a local of the
// same name; each must get its own frame so neither write is visible
// to the other, per SPEC_FULL.md §3 invariant 6.
func TestEval_SiblingSeqBlocksDoNotShareDeclarationFrame(t *testing.T) {
	out := run(t, `
a: number = 0
b: number = 0
par {
  seq {
    r: number = 10
    a = r
  }
  seq {
    r: number = 20
    b = r
  }
}
print(a)
print(b)
`)
	assert.Equal(t, "10\n20\n", out)
}

func TestEval_ChannelEcho(t *testing.T) {
	srv, err := channel.NewServer("srv", "127.0.0.1", "0")
	require.NoError(t, err)
	defer srv.Close()

	port := srv.Port()
	done := make(chan string, 1)

	go func() {
		conn, acceptErr := srv.Accept()
		if acceptErr != nil {
			done <- ""
			return
		}
		msg, recvErr := conn.Recv()
		if recvErr != nil {
			done <- ""
			return
		}
		_ = conn.Send("echo:" + msg)
		done <- msg
	}()

	cli, err := channel.Dial("cli", "127.0.0.1", strconv.Itoa(port))
	require.NoError(t, err)
	defer cli.Close()

	require.NoError(t, cli.Send("hello"))

	select {
	case got := <-done:
		assert.Equal(t, "hello", got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to receive the message")
	}

	reply, err := cli.Recv()
	require.NoError(t, err)
	assert.Equal(t, "echo:hello", reply)
}
