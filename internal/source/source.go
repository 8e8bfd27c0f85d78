package source

import (
	"context"

	"github.com/thirdweb-dev/grants-insight/internal/common"
)

type ISource interface {
	GetRoundProjects(ctx context.Context, chainId uint64, roundId string) ([]common.Project, error)
	GetRoundVotes(ctx context.Context, chainId uint64, roundId string) ([]common.Vote, error)
	GetPassportScores(ctx context.Context) ([]common.Passport, error)
	GetChainRounds(ctx context.Context, chainId uint64) ([]common.ChainRound, error)
}
