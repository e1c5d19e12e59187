// Package ports defines the interfaces (ports) that connect the command
// helpers to the client that owns the connection.
//
// The helpers never touch a socket. Everything they produce is handed to a
// [Transport], which is owned by the caller and is responsible for wire
// encoding, line termination and the actual write.
//
// # Port Interface
//
//   - [Transport]: Transmits one formatted protocol line and exposes session attributes
//
// # Usage
//
// pkg/ircsend depends only on these interfaces. Concrete transports live in
// pkg/transport; real IRC clients satisfy Transport with a thin wrapper.
package ports
