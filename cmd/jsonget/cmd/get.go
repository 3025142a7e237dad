package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/elantcev/jsoncursor/jsoncursor"
)

var (
	getFile string

	getCmd = &cobra.Command{
		Use:   "get path-segment...",
		Short: "Print the value at a path within a JSON document",
		Long: `Reads a JSON document from --file or stdin and walks it one
segment at a time: a segment that parses as an integer is applied with
MoveIndex, anything else with MoveKey. Prints the decoded value, or
"null" if the path does not resolve to a present, non-null value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			doc, err := readDocument(getFile)
			if err != nil {
				return err
			}

			parser := jsoncursor.Parser{MaxDepth: maxDepth}
			cur := parser.Parse(doc)

			for _, segment := range args {
				if i, err := strconv.Atoi(segment); err == nil {
					cur = cur.MoveIndex(i)
				} else {
					cur = cur.MoveKey(segment)
				}
				if cur.Type() == jsoncursor.Invalid {
					log.WithField("segment", segment).Debug("path segment did not resolve")
					break
				}
			}

			printCursor(cur)
			return nil
		},
	}
)

func init() {
	getCmd.Flags().StringVarP(&getFile, "file", "f", "", "path to the JSON document (default: stdin)")
	rootCmd.AddCommand(getCmd)
}

func readDocument(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printCursor(cur jsoncursor.Cursor) {
	switch cur.Type() {
	case jsoncursor.Invalid, jsoncursor.Null:
		fmt.Println("null")
	case jsoncursor.Boolean:
		fmt.Println(cur.IsTrue())
	case jsoncursor.Integer:
		v, _ := cur.Int()
		fmt.Println(v)
	case jsoncursor.Double:
		v, _ := cur.Double()
		fmt.Println(v)
	case jsoncursor.String:
		buf := make([]byte, rawLen(cur))
		n, _ := cur.String(buf)
		fmt.Println(string(buf[:n]))
	case jsoncursor.Array, jsoncursor.Object:
		raw, ok := cur.Raw()
		if !ok {
			fmt.Println("null")
			return
		}
		fmt.Println(string(raw))
	default:
		fmt.Println("null")
	}
}

func rawLen(cur jsoncursor.Cursor) int {
	raw, ok := cur.Raw()
	if !ok {
		return 0
	}
	return len(raw)
}
