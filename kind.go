// File: lixenwraith/configurator/kind.go
package configurator

import "fmt"

// Kind identifies the declared type of a variable and selects its casting rule
type Kind int

const (
	// KindString passes text through unchanged
	KindString Kind = iota
	// KindBool is a flag; presence on the command line means true
	KindBool
	// KindNum is an integer parsed from the leading digits of the text
	KindNum
	// KindArray is a list split on any of ",;|"
	KindArray
	// KindFile is an absolute path to an existing regular file
	KindFile
	// KindPath is an absolute path to an existing directory
	KindPath
	// KindConfig is a configuration file loaded and merged before other variables
	KindConfig
)

var kindNames = map[Kind]string{
	KindString: "str",
	KindBool:   "bool",
	KindNum:    "num",
	KindArray:  "arr",
	KindFile:   "file",
	KindPath:   "path",
	KindConfig: "conf",
}

// String returns the short tag of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a short tag back to its Kind
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}
