package domain

// n98-magerun takes a mix of bare flags, --key=value options and verbatim
// switches. Each argument carries its rendering kind explicitly instead of
// being guessed from its dynamic type.

type ArgKind int

const (
	// FlagKind renders as "--key".
	FlagKind ArgKind = iota
	// KeyValueKind renders as "--key=value".
	KeyValueKind
	// PositionalKind is passed through verbatim.
	PositionalKind
)

type InstallerArg struct {
	Kind  ArgKind
	Key   string
	Value string
}

func FlagArg(key string) InstallerArg {
	return InstallerArg{Kind: FlagKind, Key: key}
}

func KeyValueArg(key, value string) InstallerArg {
	return InstallerArg{Kind: KeyValueKind, Key: key, Value: value}
}

func PositionalArg(value string) InstallerArg {
	return InstallerArg{Kind: PositionalKind, Value: value}
}

type InstallerArgs []InstallerArg

// Render returns the command-line form of the arguments, in insertion order.
func (args InstallerArgs) Render() []string {
	rendered := make([]string, 0, len(args))

	for _, arg := range args {
		switch arg.Kind {
		case FlagKind:
			rendered = append(rendered, "--"+arg.Key)
		case KeyValueKind:
			rendered = append(rendered, "--"+arg.Key+"="+arg.Value)
		case PositionalKind:
			rendered = append(rendered, arg.Value)
		}
	}

	return rendered
}
