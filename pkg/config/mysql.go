package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// resolveMySQLDSN accepts MYSQL_URL as either a driver DSN or a mysql://
// URL, falling back to the discrete DB_* variables.
func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(getEnvStr(EnvMySQLURL, ""))
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		parsed, err := mysql.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("invalid MYSQL_URL: %w", err)
		}
		applyMySQLDefaults(parsed)
		return parsed.FormatDSN(), nil
	}

	user := getEnvStr(EnvDBUser, "")
	name := getEnvStr(EnvDBName, "")
	if user == "" || name == "" {
		return "", nil
	}

	c := mysql.NewConfig()
	c.User = user
	c.Passwd = getEnvStr(EnvDBPass, "")
	c.Net = "tcp"
	c.Addr = getEnvStr(EnvDBHost, DefaultDBHost) + ":" + getEnvStr(EnvDBPort, DefaultMySQLPort)
	c.DBName = name
	applyMySQLDefaults(c)
	return c.FormatDSN(), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid MYSQL_URL: %w", err)
	}

	c := mysql.NewConfig()
	c.User = u.User.Username()
	c.Passwd, _ = u.User.Password()
	c.Net = "tcp"
	c.Addr = u.Host
	if u.Port() == "" {
		c.Addr = u.Hostname() + ":" + DefaultMySQLPort
	}
	c.DBName = strings.TrimPrefix(u.Path, "/")
	applyMySQLDefaults(c)
	return c.FormatDSN(), nil
}

// Dates are stored as DATE columns and must come back as UTC time.Time.
func applyMySQLDefaults(c *mysql.Config) {
	c.ParseTime = true
	c.Loc = time.UTC
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	if _, ok := c.Params["charset"]; !ok {
		c.Params["charset"] = "utf8mb4"
	}
}
