package wire

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DeserializeErrorKind 为解码失败的类别，集合是封闭的。
type DeserializeErrorKind int

const (
	KindEOF DeserializeErrorKind = iota + 1
	KindVarNumTooLong
	KindNegativeLength
	KindBadStringEncoding
	KindInvalidBool
	KindNBTUnknownTagType
	KindNBTBadLength
	KindNBTInvalidStartTag
	KindCannotUnderstandValue
	KindFailedJSONDeserialize
)

var deserializeKindNames = map[DeserializeErrorKind]string{
	KindEOF:                   "eof",
	KindVarNumTooLong:         "var_num_too_long",
	KindNegativeLength:        "negative_length",
	KindBadStringEncoding:     "bad_string_encoding",
	KindInvalidBool:           "invalid_bool",
	KindNBTUnknownTagType:     "nbt_unknown_tag_type",
	KindNBTBadLength:          "nbt_bad_length",
	KindNBTInvalidStartTag:    "nbt_invalid_start_tag",
	KindCannotUnderstandValue: "cannot_understand_value",
	KindFailedJSONDeserialize: "failed_json_deserialize",
}

func (k DeserializeErrorKind) String() string {
	if name, ok := deserializeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// DeserializeError 描述一次解码失败。
//
// Data 保存与失败相关的原始字节（例如超长 VarInt 已读取的字节），
// Value 保存出错的数值（负长度、非法布尔字节、未知标签类型等），
// Detail 为人类可读的补充说明。
type DeserializeError struct {
	Kind   DeserializeErrorKind
	Data   []byte
	Value  int64
	Detail string

	cause error
}

func (e *DeserializeError) Error() string {
	switch e.Kind {
	case KindEOF:
		return "wire: unexpected end of input"
	case KindVarNumTooLong:
		return fmt.Sprintf("wire: variable-length number too long, consumed % x", e.Data)
	case KindNegativeLength:
		return fmt.Sprintf("wire: negative length %d", e.Value)
	case KindBadStringEncoding:
		if e.cause != nil {
			return fmt.Sprintf("wire: bad string encoding: %v", e.cause)
		}
		return "wire: bad string encoding"
	case KindInvalidBool:
		return fmt.Sprintf("wire: invalid bool byte 0x%02x", e.Value)
	case KindNBTUnknownTagType:
		return fmt.Sprintf("wire: unknown nbt tag type 0x%02x", e.Value)
	case KindNBTBadLength:
		return fmt.Sprintf("wire: bad nbt length %d", e.Value)
	case KindNBTInvalidStartTag:
		return fmt.Sprintf("wire: invalid nbt start tag 0x%02x", e.Value)
	case KindCannotUnderstandValue:
		return "wire: cannot understand value: " + e.Detail
	case KindFailedJSONDeserialize:
		return "wire: failed to deserialize json: " + e.Detail
	default:
		return "wire: deserialize failed: " + e.Kind.String()
	}
}

func (e *DeserializeError) Unwrap() error { return e.cause }

// Is 按错误类别匹配，使 errors.Is(err, ErrEOF) 等判断不依赖具体的出错数据。
func (e *DeserializeError) Is(target error) bool {
	t, ok := target.(*DeserializeError)
	return ok && t.Kind == e.Kind
}

// 各类解码错误的哨兵值，只用于 errors.Is 比较。
var (
	ErrEOF                   = &DeserializeError{Kind: KindEOF}
	ErrVarNumTooLong         = &DeserializeError{Kind: KindVarNumTooLong}
	ErrNegativeLength        = &DeserializeError{Kind: KindNegativeLength}
	ErrBadStringEncoding     = &DeserializeError{Kind: KindBadStringEncoding}
	ErrInvalidBool           = &DeserializeError{Kind: KindInvalidBool}
	ErrNBTUnknownTagType     = &DeserializeError{Kind: KindNBTUnknownTagType}
	ErrNBTBadLength          = &DeserializeError{Kind: KindNBTBadLength}
	ErrNBTInvalidStartTag    = &DeserializeError{Kind: KindNBTInvalidStartTag}
	ErrCannotUnderstandValue = &DeserializeError{Kind: KindCannotUnderstandValue}
	ErrFailedJSONDeserialize = &DeserializeError{Kind: KindFailedJSONDeserialize}
)

func NewEOFError() error {
	return &DeserializeError{Kind: KindEOF}
}

// NewVarNumTooLongError 记录超出字节预算前已经读取的字节。
func NewVarNumTooLongError(consumed []byte) error {
	return &DeserializeError{Kind: KindVarNumTooLong, Data: append([]byte(nil), consumed...)}
}

func NewNegativeLengthError(n int64) error {
	return &DeserializeError{Kind: KindNegativeLength, Value: n}
}

func NewBadStringEncodingError(data []byte, cause error) error {
	return &DeserializeError{Kind: KindBadStringEncoding, Data: append([]byte(nil), data...), cause: cause}
}

func NewInvalidBoolError(b byte) error {
	return &DeserializeError{Kind: KindInvalidBool, Value: int64(b)}
}

func NewNBTUnknownTagTypeError(id byte) error {
	return &DeserializeError{Kind: KindNBTUnknownTagType, Value: int64(id)}
}

func NewNBTBadLengthError(n int64) error {
	return &DeserializeError{Kind: KindNBTBadLength, Value: n}
}

func NewNBTInvalidStartTagError(id byte) error {
	return &DeserializeError{Kind: KindNBTInvalidStartTag, Value: int64(id)}
}

// NewCannotUnderstandValueError 用于数值无法对应到任何已知取值的情况，例如未知枚举值。
func NewCannotUnderstandValueError(value int64, format string, args ...any) error {
	return &DeserializeError{Kind: KindCannotUnderstandValue, Value: value, Detail: fmt.Sprintf(format, args...)}
}

func NewFailedJSONDeserializeError(detail string, cause error) error {
	if cause != nil {
		detail = fmt.Sprintf("%s: %v", detail, cause)
	}
	return &DeserializeError{Kind: KindFailedJSONDeserialize, Detail: detail, cause: cause}
}

// AsDeserializeError 从错误链中取出 *DeserializeError。
func AsDeserializeError(err error) (*DeserializeError, bool) {
	var de *DeserializeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// SerializeErrorKind 为编码失败的类别。
type SerializeErrorKind int

const (
	KindFailedJSONEncode SerializeErrorKind = iota + 1
	KindCountOverflow
	KindSinkFailed
	KindInvalidValue
)

func (k SerializeErrorKind) String() string {
	switch k {
	case KindFailedJSONEncode:
		return "failed_json_encode"
	case KindCountOverflow:
		return "count_overflow"
	case KindSinkFailed:
		return "sink_failed"
	case KindInvalidValue:
		return "invalid_value"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SerializeError 描述一次编码失败。合法的内存值只会在 JSON 桥接、
// 元素数量超出前缀类型范围或底层写入失败时编码失败；KindInvalidValue 表示内存值本身不合法，
// 例如列表元素类型与声明不一致。
type SerializeError struct {
	Kind   SerializeErrorKind
	Detail string

	cause error
}

func (e *SerializeError) Error() string {
	msg := "wire: serialize failed: " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *SerializeError) Unwrap() error { return e.cause }

func (e *SerializeError) Is(target error) bool {
	t, ok := target.(*SerializeError)
	return ok && t.Kind == e.Kind
}

var (
	ErrFailedJSONEncode = &SerializeError{Kind: KindFailedJSONEncode}
	ErrCountOverflow    = &SerializeError{Kind: KindCountOverflow}
	ErrSinkFailed       = &SerializeError{Kind: KindSinkFailed}
	ErrInvalidValue     = &SerializeError{Kind: KindInvalidValue}
)

func NewFailedJSONEncodeError(detail string, cause error) error {
	return &SerializeError{Kind: KindFailedJSONEncode, Detail: detail, cause: cause}
}

func NewCountOverflowError(counter string, count int) error {
	return &SerializeError{Kind: KindCountOverflow, Detail: fmt.Sprintf("%d elements do not fit in %s", count, counter)}
}

func NewSinkFailedError(cause error) error {
	return &SerializeError{Kind: KindSinkFailed, cause: cause}
}

func NewInvalidValueError(format string, args ...any) error {
	return &SerializeError{Kind: KindInvalidValue, Detail: fmt.Sprintf(format, args...)}
}
