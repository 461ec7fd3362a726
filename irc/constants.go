package irc

// IRC Messages, these messages are 1-1 constant to string lookups for ease of
// use when registering handlers etc.
const (
	MODE    = "MODE"
	JOIN    = "JOIN"
	PART    = "PART"
	PRIVMSG = "PRIVMSG"
	NOTICE  = "NOTICE"
)

// IRC Numerics that carry capability or channel mode information.
const (
	RPL_MYINFO          = "004"
	RPL_ISUPPORT        = "005"
	RPL_CHANNELMODEIS   = "324"
	RPL_INVITELIST      = "346"
	RPL_ENDOFINVITELIST = "347"
	RPL_EXCEPTLIST      = "348"
	RPL_ENDOFEXCEPTLIST = "349"
	RPL_BANLIST         = "367"
	RPL_ENDOFBANLIST    = "368"
)
