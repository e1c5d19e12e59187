package ircsend

func sendVerb(t Transport, v Verb, args []string) error {
	return passthrough(v.Command())(t, args...)
}

// Join sends JOIN with args unchanged.
func Join(t Transport, args ...string) error { return sendVerb(t, VerbJoin, args) }

// Part sends PART with args unchanged.
func Part(t Transport, args ...string) error { return sendVerb(t, VerbPart, args) }

// Nick sends NICK with args unchanged.
func Nick(t Transport, args ...string) error { return sendVerb(t, VerbNick, args) }

// Notice sends NOTICE with args unchanged.
func Notice(t Transport, args ...string) error { return sendVerb(t, VerbNotice, args) }

// Invite sends INVITE with args unchanged.
func Invite(t Transport, args ...string) error { return sendVerb(t, VerbInvite, args) }

// Mode sends MODE with args unchanged.
func Mode(t Transport, args ...string) error { return sendVerb(t, VerbMode, args) }
