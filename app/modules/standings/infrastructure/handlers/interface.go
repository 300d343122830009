package standingshandlers

import "github.com/ThreeDotsLabs/watermill/message"

// Handlers processes the change events that invalidate the standings snapshot.
type Handlers interface {
	HandleTableChanged(msg *message.Message) error
	HandleScoreChanged(msg *message.Message) error
	HandlePlayerChanged(msg *message.Message) error
}
