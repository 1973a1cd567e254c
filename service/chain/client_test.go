package chain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/abi"
	bCtx "github.com/x-xyz/nftmarket/base/ctx"
)

type fakeCaller struct {
	out  []byte
	err  error
	msgs []ethereum.CallMsg
}

func (f *fakeCaller) CallContract(_ bCtx.Ctx, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.msgs = append(f.msgs, msg)
	return f.out, f.err
}

type clientSuite struct {
	suite.Suite
	caller *fakeCaller
	client Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.caller = &fakeCaller{}
	s.client = &clientImpl{callers: map[int32]contractCaller{1: s.caller}}
}

func (s *clientSuite) TestCall() {
	out, err := abi.AggregatorV3ABI.Methods["decimals"].Outputs.Pack(uint8(8))
	s.Require().NoError(err)
	s.caller.out = out

	feed := common.HexToAddress("0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419")
	res, err := s.client.Call(bCtx.Background(), 1, feed, nil, abi.AggregatorV3ABI, "decimals")
	s.Require().NoError(err)
	s.Equal(uint8(8), res[0].(uint8))
	s.Require().Len(s.caller.msgs, 1)
	s.Equal(feed, *s.caller.msgs[0].To)
}

func (s *clientSuite) TestUnsupportedChain() {
	_, err := s.client.Call(bCtx.Background(), 5, common.Address{}, nil, abi.AggregatorV3ABI, "decimals")
	s.ErrorIs(err, ErrUnsupportedChain)
	s.Empty(s.caller.msgs)
}
