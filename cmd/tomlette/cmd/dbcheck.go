package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"github.com/spf13/cobra"
	"golang.org/x/net/proxy"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/eidsvoll/tomlette/tomlette"
)

// openDatabase opens dsn against the dialect its scheme names, grounded on
// the teacher's OpenSocks5Sql (cli/cmd/config.go): sqlserver:// and
// azuresql:// take the same mssql/azuread connector path (with optional
// SOCKS5 proxying via SQL_SOCKS), and postgres:// is new here, dialing
// through jackc/pgx/v5's database/sql driver since tomlette documents are
// not MSSQL-specific the way the teacher's sqlcode.yaml was.
func openDatabase(dsn string) (*sql.DB, error) {
	switch {
	case strings.HasPrefix(dsn, "azuresql://"):
		connector, err := azuread.NewConnector(dsn)
		if err != nil {
			return nil, err
		}
		if err := attachSocks5(connector); err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err := mssql.NewConnector(dsn)
		if err != nil {
			return nil, err
		}
		if err := attachSocks5(connector); err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return sql.Open("pgx", dsn)
	default:
		return nil, errors.New("expected a sqlserver://, azuresql://, postgres://, or postgresql:// connection string")
	}
}

func attachSocks5(connector *mssql.Connector) error {
	socksProxyAddress := os.Getenv("SQL_SOCKS")
	if socksProxyAddress == "" {
		return nil
	}
	dialer, err := proxy.SOCKS5("tcp", socksProxyAddress, nil, nil)
	if err != nil {
		return fmt.Errorf("could not connect with SOCKS5 to %s: %w", socksProxyAddress, err)
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return errors.New("SOCKS5 dialer does not support context dialing")
	}
	connector.Dialer = ctxDialer
	return nil
}

var dbCheckCmd = &cobra.Command{
	Use:   "db-check",
	Short: "Read the [database] table from the document and verify connectivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file == "" {
			return errors.New("--file is required")
		}
		doc, err := tomlette.ParseFile(file)
		if err != nil {
			logger.WithError(err).Error("failed to parse document")
			return err
		}
		connVal, ok := doc.Lookup("database.connection")
		if !ok {
			return errors.New(`document has no "database.connection" key`)
		}
		dsn, ok := connVal.AsString()
		if !ok {
			return errors.New(`"database.connection" is not a string`)
		}

		db, err := openDatabase(dsn)
		if err != nil {
			logger.WithError(err).Error("could not construct a database connection")
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.WithError(err).Error("database ping failed")
			return err
		}
		fmt.Println("connection ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCheckCmd)
}
