package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

// SharedSecretSize 为登录阶段协商出的共享密钥长度，同时作为 AES-128 的密钥与初始向量。
const SharedSecretSize = 16

// CFB8Encryptor 为协议使用的 AES/CFB8 流加密，读写两个方向各持有一份独立的移位寄存器。
type CFB8Encryptor struct {
	enc *cfb8
	dec *cfb8
}

// 编译期断言：确保 CFB8Encryptor 实现了 Encryptor 接口。
var _ Encryptor = (*CFB8Encryptor)(nil)

// NewCFB8Encryptor 使用共享密钥创建加密器，密钥同时作为初始向量。
func NewCFB8Encryptor(sharedSecret []byte) (*CFB8Encryptor, error) {
	if len(sharedSecret) != SharedSecretSize {
		return nil, merr.WrapErrParameterInvalid(SharedSecretSize, len(sharedSecret), "shared secret size")
	}
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, merr.WrapErrFrameEncryption(err)
	}
	return &CFB8Encryptor{
		enc: newCFB8(block, sharedSecret, false),
		dec: newCFB8(block, sharedSecret, true),
	}, nil
}

func (c *CFB8Encryptor) Encrypt(dst, src []byte) { c.enc.XORKeyStream(dst, src) }

func (c *CFB8Encryptor) Decrypt(dst, src []byte) { c.dec.XORKeyStream(dst, src) }

// cfb8 实现 8 位反馈的 CFB 模式：每个字节都用寄存器加密结果的首字节异或，
// 然后寄存器左移一个字节并补入本字节的密文。
type cfb8 struct {
	block    cipher.Block
	register []byte
	out      []byte
	decrypt  bool
}

var _ cipher.Stream = (*cfb8)(nil)

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	register := make([]byte, block.BlockSize())
	copy(register, iv)
	return &cfb8{
		block:    block,
		register: register,
		out:      make([]byte, block.BlockSize()),
		decrypt:  decrypt,
	}
}

func (x *cfb8) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("crypto/cfb8: output smaller than input")
	}
	for i, b := range src {
		x.block.Encrypt(x.out, x.register)
		c := b ^ x.out[0]
		copy(x.register, x.register[1:])
		if x.decrypt {
			x.register[len(x.register)-1] = b
		} else {
			x.register[len(x.register)-1] = c
		}
		dst[i] = c
	}
}
