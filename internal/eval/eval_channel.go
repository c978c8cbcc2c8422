/*
File    : minipar/internal/eval/eval_channel.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/channel"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/types"
	"github.com/minipar-lang/minipar/internal/value"
)

// evalChannelDecl binds a new s_channel (listener) or c_channel
// (connected socket) in env, per spec.md §4.5.
func (e *Evaluator) evalChannelDecl(n *ast.ChannelDecl, env *environment.Environment) {
	host := e.evalExpr(n.Host, env).(*value.Str).Val
	port := e.evalExpr(n.Port, env).(*value.Number).Val
	portStr := value.NewNumber(port).String()

	if n.Kind == types.S_CHANNEL {
		srv, err := channel.NewServer(n.Name, host, portStr)
		if err != nil {
			fail(n.Token().Line, "s_channel '%s' failed to bind %s:%s: %v", n.Name, host, portStr, err)
		}
		e.Log.Infof("s_channel %s listening on %s", n.Name, srv.Addr())
		env.Bind(n.Name, srv)
		return
	}
	cli, err := channel.Dial(n.Name, host, portStr)
	if err != nil {
		fail(n.Token().Line, "c_channel '%s' failed to connect %s:%s: %v", n.Name, host, portStr, err)
	}
	e.Log.Infof("c_channel %s connected to %s:%s", n.Name, host, portStr)
	env.Bind(n.Name, cli)
}

// evalChannelOp dispatches accept/send/recv/close, per spec.md §4.5.
func (e *Evaluator) evalChannelOp(n *ast.Call, env *environment.Environment) value.Value {
	target := e.evalExpr(n.Args[0], env)
	line := n.Token().Line

	switch n.Oper {
	case "accept":
		srv, ok := target.(*channel.Server)
		if !ok {
			invariantBreach(line, "accept() target is not an s_channel at runtime")
		}
		conn, err := srv.Accept()
		if err != nil {
			fail(line, "accept failed: %v", err)
		}
		e.Log.Debugf("s_channel %s accepted a client", srv.Name)
		return conn
	case "send":
		payload := e.evalExpr(n.Args[1], env).(*value.Str).Val
		if err := sendTo(target, payload); err != nil {
			fail(line, "send failed: %v", err)
		}
		return value.VoidValue
	case "recv":
		s, err := recvFrom(target)
		if err != nil {
			fail(line, "recv failed: %v", err)
		}
		return value.NewStr(s)
	case "close":
		if err := closeHandle(target); err != nil {
			fail(line, "close failed: %v", err)
		}
		e.Log.Debugf("closed %s", target)
		return value.VoidValue
	default:
		invariantBreach(line, "unknown channel operation %q", n.Oper)
		return nil
	}
}

func sendTo(v value.Value, payload string) error {
	switch h := v.(type) {
	case *channel.Client:
		return h.Send(payload)
	case *channel.Conn:
		return h.Send(payload)
	default:
		return &channel.ClosedError{}
	}
}

func recvFrom(v value.Value) (string, error) {
	switch h := v.(type) {
	case *channel.Client:
		return h.Recv()
	case *channel.Conn:
		return h.Recv()
	default:
		return "", &channel.ClosedError{}
	}
}

func closeHandle(v value.Value) error {
	switch h := v.(type) {
	case *channel.Server:
		return h.Close()
	case *channel.Client:
		return h.Close()
	case *channel.Conn:
		return h.Close()
	default:
		return nil
	}
}
