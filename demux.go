package stompy

import "sync"

//frameQueue is an ordered FIFO buffer of frames read off the transport but
//not yet claimed by the caller they belong to. It is unbounded: the queues
//only hold frames misfiled between the two accessors, but a caller that
//never drains one leaks the backlog.
type frameQueue struct {
	sync.Mutex
	frames []*Frame
}

func (q *frameQueue) push(frame *Frame) {
	q.Lock()
	defer q.Unlock()
	q.frames = append(q.frames, frame)
}

func (q *frameQueue) pop() (*Frame, bool) {
	q.Lock()
	defer q.Unlock()
	if len(q.frames) == 0 {
		return nil, false
	}
	frame := q.frames[0]
	q.frames = q.frames[1:]
	return frame, true
}

func (q *frameQueue) len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.frames)
}

//putMessage queues a MESSAGE frame for a later GetMessage call. Frames
//without a destination header are dropped: broker protocol policy, such a
//frame cannot be a meaningful unsolicited delivery. The drop is deliberate,
//not a fall through.
func (c *Conn) putMessage(frame *Frame) {
	if !frame.Headers.Has(HdrDestination) {
		c.log.Trace().Str("command", frame.Command).Msg("dropping message frame without destination")
		return
	}
	c.messages.push(frame)
}

//GetMessage returns the next MESSAGE frame, draining the pending message
//queue before touching the transport. Any reply frame encountered on the
//way is parked on the pending reply queue for a later GetReply call. In non
//blocking mode a nil frame and nil error mean nothing is pending.
func (c *Conn) GetMessage(nonBlocking bool) (*Frame, error) {
	for {
		frame, err := c.nextFrame(&c.messages, nonBlocking)
		if err != nil {
			return nil, err
		}
		if frame == nil {
			return nil, nil
		}
		if frame.Command == CmdMessage {
			if !frame.Headers.Has(HdrDestination) {
				c.log.Trace().Str("command", frame.Command).Msg("dropping message frame without destination")
				continue
			}
			return frame, nil
		}
		c.replies.push(frame)
	}
}

//GetReply returns the next non MESSAGE frame, draining the pending reply
//queue before touching the transport. MESSAGE frames encountered on the way
//are parked for a later GetMessage call. Same non blocking contract as
//GetMessage.
func (c *Conn) GetReply(nonBlocking bool) (*Frame, error) {
	for {
		frame, err := c.nextFrame(&c.replies, nonBlocking)
		if err != nil {
			return nil, err
		}
		if frame == nil {
			return nil, nil
		}
		if frame.Command == CmdMessage {
			c.putMessage(frame)
			continue
		}
		return frame, nil
	}
}

//nextFrame yields the next candidate frame for one of the two accessors:
//first from that accessor's own queue, otherwise freshly read and parsed
//from the transport. Transport access is serialized so GetMessage and
//GetReply can run from different goroutines against the same connection.
func (c *Conn) nextFrame(own *frameQueue, nonBlocking bool) (*Frame, error) {
	if frame, ok := own.pop(); ok {
		return frame, nil
	}

	c.readMu.Lock()
	defer c.readMu.Unlock()

	//a concurrent accessor may have parked a frame for us while we waited
	//for the transport
	if frame, ok := own.pop(); ok {
		return frame, nil
	}

	raw, ok, err := c.reader.readRaw(nonBlocking)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return Parse(raw)
}
