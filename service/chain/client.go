package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
)

var ErrUnsupportedChain = xerrors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
}

type Client interface {
	// Call packs params for method, calls addr at blk (latest when nil) and unpacks the outputs
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
}

type contractCaller interface {
	CallContract(ctx bCtx.Ctx, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethCaller struct {
	*ethclient.Client
}

func (e ethCaller) CallContract(ctx bCtx.Ctx, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	return e.Client.CallContract(ctx, msg, blk)
}

type clientImpl struct {
	callers map[int32]contractCaller
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	callers := make(map[int32]contractCaller)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		callers[chainId] = ethCaller{client}
	}
	return &clientImpl{callers: callers}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	caller, ok := c.callers[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := caller.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method, "addr": addr.Hex()}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
