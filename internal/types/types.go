// README: Shared scalar types used across modules.
package types

type ID string
