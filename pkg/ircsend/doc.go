// Package ircsend formats outbound IRC commands and hands them to a Transport.
//
// The package never opens a connection. Every helper builds the tokens of a
// protocol line and calls [Transport.Send]; the transport joins the tokens
// with spaces, terminates the line and writes it. Transport errors are
// returned unchanged.
//
// # Hand-written helpers
//
//	t := transport.NewWriter(conn, "client.example.org")
//	_ = ircsend.User(t, "bot", ircsend.UserOptions{Realname: "Example Bot"})
//	_ = ircsend.Msg(t, "#go", "hello\nworld") // two PRIVMSG lines
//	_ = ircsend.Names(t, "#go", "#irc")        // batched under MaxNamesLine
//	_ = ircsend.CTCP(t, "alice", "version")   // PRIVMSG alice :\x01VERSION\x01
//	_ = ircsend.Quit(t, ircsend.QuitOptions{Reason: "bye"})
//
// # Generated commands
//
// A [Surface] is built once from the simple verbs (join, part, nick, notice,
// invite, mode) and a numeric reply table. Each entry forwards its
// arguments verbatim:
//
//	s, err := ircsend.Build(numeric.Default())
//	if err != nil {
//	    // the table was missing or invalid; nothing was registered
//	}
//	_ = s.Call(t, "join", "#go")                           // JOIN #go
//	_ = s.Call(t, "ERR_NOSUCHNICK", "bob", ":No such nick") // 401 bob :No such nick
//
// [Default] builds the surface for the built-in table on first use and
// returns the same surface afterwards.
package ircsend
