package domain

import (
	"strconv"
	"strings"
)

const (
	// RowLetters 是合法的行字母，按顺序对应 1..MaxRows。
	RowLetters = "ABCDEF"
	MaxRows    = len(RowLetters)
	MaxColumns = 12
)

// CellReference 是“行字母 + 列号”形式的单元格引用，例如 A1、F12。
//
// 零值表示“空”（无效引用）：所有构造函数都以 (CellReference, bool) 返回，
// 调用方必须检查 ok，或者用 Valid() 判断。
type CellReference struct {
	row    byte
	column int
}

// ParseCellReference 解析 "A1" 这类 token。
//
// 首字符大小写不敏感，必须在 RowLetters 内；其余部分按十进制整数解析，范围 1..MaxColumns。
// 不单独校验长度："A012" 会被接受为 A12，只有字母和列号校验真正起过滤作用。
func ParseCellReference(token string) (CellReference, bool) {
	if token == "" {
		return CellReference{}, false
	}
	row := strings.ToUpper(token[:1])
	if !strings.Contains(RowLetters, row) {
		return CellReference{}, false
	}
	column, err := strconv.Atoi(token[1:])
	if err != nil || !validColumn(column) {
		return CellReference{}, false
	}
	return CellReference{row: row[0], column: column}, true
}

// NewCellReference 用 1 起始的行号/列号构造引用，行 1..MaxRows 映射到 'A'.. 。
func NewCellReference(row, column int) (CellReference, bool) {
	if row < 1 || row > MaxRows || !validColumn(column) {
		return CellReference{}, false
	}
	return CellReference{row: RowLetters[row-1], column: column}, true
}

// MustCellReference 仅用于常量式的已知合法引用（测试、示例）。
func MustCellReference(token string) CellReference {
	ref, ok := ParseCellReference(token)
	if !ok {
		panic("domain: invalid cell reference " + strconv.Quote(token))
	}
	return ref
}

func validColumn(column int) bool {
	return column >= 1 && column <= MaxColumns
}

func (c CellReference) Valid() bool {
	return c.row != 0
}

// Row 返回行字母，空引用返回 ""。
func (c CellReference) Row() string {
	if !c.Valid() {
		return ""
	}
	return string(c.row)
}

func (c CellReference) Column() int {
	return c.column
}

// NumericRow 返回 1 起始的行号：'A'→1 … 'F'→6；空引用返回 0。
func (c CellReference) NumericRow() int {
	if !c.Valid() {
		return 0
	}
	return strings.IndexByte(RowLetters, c.row) + 1
}

func (c CellReference) String() string {
	if !c.Valid() {
		return ""
	}
	return string(c.row) + strconv.Itoa(c.column)
}
