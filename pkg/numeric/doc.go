// Package numeric holds the registry of IRC numeric reply codes and their
// symbolic names.
//
// A [Table] maps a code such as 401 to a name such as ERR_NOSUCHNICK. The
// command surface in pkg/ircsend generates one command per name from a Table,
// so a Table is validated as a whole before anything is generated from it.
//
// Tables come from three places:
//
//   - [Default]: the built-in RFC 1459/2812 registry plus common extensions
//   - [Parse] and [LoadFile]: a TOML document with a [numerics] section
//   - [Merge]: an overlay layered on top of a base table
//
// A [Watcher] reloads a table file when it changes on disk.
//
// The TOML format is:
//
//	[numerics]
//	401 = "ERR_NOSUCHNICK"
//	"001" = "RPL_WELCOME"
package numeric
