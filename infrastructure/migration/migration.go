// Package migration cria as tabelas da aplicação no banco configurado
package migration

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/cet-calculator-api/infrastructure/database"
)

//go:embed sql/*.sql
var scripts embed.FS

// Migrate aplica o schema do driver da conexão. Os comandos são idempotentes.
func Migrate(ctx context.Context, conn database.Conn) error {
	script, err := scripts.ReadFile(fmt.Sprintf("sql/%s.sql", conn.Driver()))
	if err != nil {
		return fmt.Errorf("schema não encontrado para o driver %s: %w", conn.Driver(), err)
	}

	statements := splitStatements(string(script))
	for i, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao executar migração %d: %w", i+1, err)
		}
	}

	logrus.Infof("Migração concluída: %d comandos aplicados (%s)", len(statements), conn.Driver())
	return nil
}

func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
