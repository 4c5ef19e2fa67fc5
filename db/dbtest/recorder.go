// Package dbtest opens gorm on a database/sql driver that records every
// statement instead of talking to postgres. Queries return no rows.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"io"
	"strings"
	"sync"
)

type Statement struct {
	Query string
	Args  []any
}

type Recorder struct {
	mu         sync.Mutex
	statements []Statement
	begins     int
	commits    int
	rollbacks  int
	failOn     string
}

// Open returns a gorm connection using the postgres dialect on top of a new Recorder
func Open() (*gorm.DB, *Recorder, error) {
	recorder := &Recorder{}
	sqlDB := sql.OpenDB(recorderConnector{recorder: recorder})

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, err
	}
	return database, recorder, nil
}

// FailOn makes every statement containing fragment fail
func (recorder *Recorder) FailOn(fragment string) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.failOn = fragment
}

func (recorder *Recorder) Statements() []Statement {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]Statement(nil), recorder.statements...)
}

// StatementsContaining statements whose query contains fragment
func (recorder *Recorder) StatementsContaining(fragment string) []Statement {
	var matching []Statement
	for _, statement := range recorder.Statements() {
		if strings.Contains(statement.Query, fragment) {
			matching = append(matching, statement)
		}
	}
	return matching
}

// Transactions returns how many transactions were begun, committed and rolled back
func (recorder *Recorder) Transactions() (begins, commits, rollbacks int) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.begins, recorder.commits, recorder.rollbacks
}

func (recorder *Recorder) record(query string, args []driver.NamedValue) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg.Value
	}
	recorder.statements = append(recorder.statements, Statement{Query: query, Args: values})

	if recorder.failOn != "" && strings.Contains(query, recorder.failOn) {
		return errors.New("connection refused")
	}
	return nil
}

type recorderConnector struct {
	recorder *Recorder
}

func (connector recorderConnector) Connect(context.Context) (driver.Conn, error) {
	return &recorderConn{recorder: connector.recorder}, nil
}

func (connector recorderConnector) Driver() driver.Driver {
	return recorderDriver{recorder: connector.recorder}
}

type recorderDriver struct {
	recorder *Recorder
}

func (d recorderDriver) Open(string) (driver.Conn, error) {
	return &recorderConn{recorder: d.recorder}, nil
}

type recorderConn struct {
	recorder *Recorder
}

func (conn *recorderConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements not supported")
}

func (conn *recorderConn) Close() error {
	return nil
}

func (conn *recorderConn) Begin() (driver.Tx, error) {
	return conn.BeginTx(context.Background(), driver.TxOptions{})
}

func (conn *recorderConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	conn.recorder.mu.Lock()
	defer conn.recorder.mu.Unlock()
	conn.recorder.begins++
	return &recorderTx{recorder: conn.recorder}, nil
}

func (conn *recorderConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	err := conn.recorder.record(query, args)
	if err != nil {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

func (conn *recorderConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	err := conn.recorder.record(query, args)
	if err != nil {
		return nil, err
	}
	return emptyRows{}, nil
}

// CheckNamedValue accepts any argument, values are only recorded
func (conn *recorderConn) CheckNamedValue(*driver.NamedValue) error {
	return nil
}

type recorderTx struct {
	recorder *Recorder
}

func (tx *recorderTx) Commit() error {
	tx.recorder.mu.Lock()
	defer tx.recorder.mu.Unlock()
	tx.recorder.commits++
	return nil
}

func (tx *recorderTx) Rollback() error {
	tx.recorder.mu.Lock()
	defer tx.recorder.mu.Unlock()
	tx.recorder.rollbacks++
	return nil
}

type emptyRows struct{}

func (emptyRows) Columns() []string {
	return []string{}
}

func (emptyRows) Close() error {
	return nil
}

func (emptyRows) Next([]driver.Value) error {
	return io.EOF
}
