package roller

import (
	"context"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Reply is a roll answered by a remote roller.
type Reply struct {
	ID   string
	Seed int64
	Text string
}

// Client calls RollService.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a RollService client over conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Roll asks the roller to evaluate expression. A non-nil seed replays a
// previous roll.
func (c *Client) Roll(ctx context.Context, expression string, seed *int64, opts ...grpc.CallOption) (Reply, error) {
	if seed != nil {
		ctx = metadata.AppendToOutgoingContext(ctx, HeaderRollSeed, strconv.FormatInt(*seed, 10))
	}

	var header metadata.MD
	out := new(wrapperspb.StringValue)
	opts = append(opts, grpc.Header(&header))
	if err := c.conn.Invoke(ctx, RollMethod, wrapperspb.String(expression), out, opts...); err != nil {
		return Reply{}, err
	}

	reply := Reply{Text: out.GetValue()}
	if ids := header.Get(HeaderRollID); len(ids) > 0 {
		reply.ID = ids[0]
	}
	if seeds := header.Get(HeaderRollSeed); len(seeds) > 0 {
		reply.Seed, _ = strconv.ParseInt(seeds[0], 10, 64)
	}
	return reply, nil
}

// UserMessage returns the localized message attached to a RollService error,
// or the status message when none is attached.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok && msg.GetMessage() != "" {
			return msg.GetMessage()
		}
	}
	return st.Message()
}
