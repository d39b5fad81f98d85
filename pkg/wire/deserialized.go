package wire

// Deserialized 为一次成功解码的结果：解出的值以及输入中尚未消费的后缀。
//
// Data 总是输入切片的后缀（子切片），因此解码可以通过简单的顺序调用组合起来。
type Deserialized[T any] struct {
	Value T
	Data  []byte
}

// Ok 构造一个成功的解码结果。
func Ok[T any](value T, rest []byte) (Deserialized[T], error) {
	return Deserialized[T]{Value: value, Data: rest}, nil
}

// Map 只变换值，保留剩余字节。
func Map[T, U any](d Deserialized[T], f func(T) U) Deserialized[U] {
	return Deserialized[U]{Value: f(d.Value), Data: d.Data}
}

// TryMap 以可能失败的方式变换值，失败时原样返回 f 的错误。
func TryMap[T, U any](d Deserialized[T], f func(T) (U, error)) (Deserialized[U], error) {
	v, err := f(d.Value)
	if err != nil {
		return Deserialized[U]{}, err
	}
	return Deserialized[U]{Value: v, Data: d.Data}, nil
}

// AndThen 以当前值和剩余字节继续下一步解码。
func AndThen[T, U any](d Deserialized[T], f func(T, []byte) (Deserialized[U], error)) (Deserialized[U], error) {
	return f(d.Value, d.Data)
}

// Replace 用 v 替换值，保留剩余字节。
func Replace[T, U any](d Deserialized[T], v U) Deserialized[U] {
	return Deserialized[U]{Value: v, Data: d.Data}
}

// Take 切出前 n 个字节，返回的值与输入共享底层内存。
func Take(data []byte, n int) (Deserialized[[]byte], error) {
	if n < 0 {
		return Deserialized[[]byte]{}, NewNegativeLengthError(int64(n))
	}
	if len(data) < n {
		return Deserialized[[]byte]{}, NewEOFError()
	}
	return Ok(data[:n:n], data[n:])
}

// ReadOneByte 读取第一个字节。
func ReadOneByte(data []byte) (Deserialized[byte], error) {
	if len(data) == 0 {
		return Deserialized[byte]{}, NewEOFError()
	}
	return Ok(data[0], data[1:])
}
