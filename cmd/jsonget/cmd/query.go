package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/elantcev/jsoncursor/internal/sqlitefunc"
)

var (
	queryDB  string
	querySQL string

	registerOnce sync.Once
	registerErr  error

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Run a SQL query against a SQLite database with json_get available",
		Long: `Opens --db with the modernc.org/sqlite driver, registers
json_get(doc, arg1, arg2, ...) as a scalar function backed by
jsoncursor, runs --sql, and prints the result rows tab-separated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if querySQL == "" {
				return errNoQuery
			}
			registerOnce.Do(func() {
				registerErr = sqlitefunc.Register(logger())
			})
			if registerErr != nil {
				return registerErr
			}

			db, err := sql.Open("sqlite", queryDB)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.QueryContext(cmd.Context(), querySQL)
			if err != nil {
				return err
			}
			defer rows.Close()

			cols, err := rows.Columns()
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(cols, "\t"))

			vals := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}

			for rows.Next() {
				if err := rows.Scan(ptrs...); err != nil {
					return err
				}
				cells := make([]string, len(vals))
				for i, v := range vals {
					cells[i] = fmt.Sprint(v)
				}
				fmt.Println(strings.Join(cells, "\t"))
			}
			return rows.Err()
		},
	}
)

var errNoQuery = errors.New("jsonget: --sql is required")

func init() {
	queryCmd.Flags().StringVar(&queryDB, "db", ":memory:", "path to the SQLite database file")
	queryCmd.Flags().StringVar(&querySQL, "sql", "", "SQL query to run")
	rootCmd.AddCommand(queryCmd)
}
