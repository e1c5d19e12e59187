// Package transport provides ircsend.Transport implementations that do not
// own a network connection.
//
//   - [Writer]: writes CRLF-terminated lines to any io.Writer (a net.Conn,
//     os.Stdout, a buffer)
//   - [Recorder]: keeps every line in memory, for tests and dry runs
package transport
