package e2e

import (
	"chat-relay/domain"
	"chat-relay/infrastructure/websocket"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const readTimeout = 5 * time.Second

type BaseRelaySuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration, the suite is skipped
// without a running relay.
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayAddr == "" {
		s.T().Skip("RELAY_ADDR not set, skipping end-to-end suite")
	}
}

func (s *BaseRelaySuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Peer is one websocket client of the relay.
type Peer struct {
	suite *BaseRelaySuite
	name  string
	ID    domain.ConnectionID
	conn  *gws.Conn
}

func (s *BaseRelaySuite) Dial(name string) *Peer {
	s.header(s.T(), "Connecting "+name)
	conn, resp, err := gws.DefaultDialer.Dial(s.Config.RelayAddr, nil)
	s.Require().NoError(err, "Failed to connect to relay at "+s.Config.RelayAddr)
	id := domain.ConnectionID(resp.Header.Get(websocket.ConnectionIDHeader))
	s.Require().NotEmpty(id)
	s.T().Logf("%s connected as %s", name, id)
	return &Peer{suite: s, name: name, ID: id, conn: conn}
}

func (p *Peer) Close() {
	_ = p.conn.WriteMessage(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, ""))
	_ = p.conn.Close()
}

// Send writes one frame built from the action and the request fields.
func (p *Peer) Send(action string, fields map[string]any) {
	frame := map[string]any{"action": action}
	for k, v := range fields {
		frame[k] = v
	}
	b, err := json.Marshal(frame)
	p.suite.Require().NoError(err)
	if p.suite.Config.DebugJSON {
		p.suite.T().Logf("%s >> %s", p.name, b)
	}
	p.suite.Require().NoError(p.conn.WriteMessage(gws.TextMessage, b))
}

func (p *Peer) Read() string {
	p.suite.Require().NoError(p.conn.SetReadDeadline(time.Now().Add(readTimeout)))
	_, msg, err := p.conn.ReadMessage()
	p.suite.Require().NoError(err, p.name+" expected a frame")
	if p.suite.Config.DebugJSON {
		p.suite.T().Logf("%s << %s", p.name, msg)
	}
	return string(msg)
}

// Response reads frames until one decodes as a response, routed payloads
// read on the way are returned too.
func (p *Peer) Response() (domain.Response, []string) {
	var payloads []string
	for {
		frame := p.Read()
		var resp domain.Response
		if err := json.Unmarshal([]byte(frame), &resp); err == nil && resp.StatusCode != 0 {
			return resp, payloads
		}
		payloads = append(payloads, frame)
	}
}

// GrpcConn initializes a gRPC connection with logging and JSON debugging.
func (s *BaseRelaySuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	s.header(t, name)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err == nil {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithHealth provides a health client within a contextual test step.
func (s *BaseRelaySuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.HealthAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, healthpb.NewHealthClient(conn))
}
