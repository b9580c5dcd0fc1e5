package stomp

// Client and server commands used by the push channel.
const (
	CommandConnect     = "CONNECT"
	CommandConnected   = "CONNECTED"
	CommandSubscribe   = "SUBSCRIBE"
	CommandUnsubscribe = "UNSUBSCRIBE"
	CommandDisconnect  = "DISCONNECT"
	CommandMessage     = "MESSAGE"
	CommandReceipt     = "RECEIPT"
	CommandError       = "ERROR"
)

// Header names.
const (
	HeaderAcceptVersion = "accept-version"
	HeaderVersion       = "version"
	HeaderHost          = "host"
	HeaderHeartBeat     = "heart-beat"
	HeaderDestination   = "destination"
	HeaderID            = "id"
	HeaderSubscription  = "subscription"
	HeaderMessageID     = "message-id"
	HeaderContentType   = "content-type"
	HeaderContentLength = "content-length"
	HeaderReceipt       = "receipt"
	HeaderMessage       = "message"
	HeaderAck           = "ack"
)

const (
	SupportedVersions = "1.2,1.1"
	AckAuto           = "auto"
)

const (
	nullByte = 0x00
	eol      = '\n'
)
