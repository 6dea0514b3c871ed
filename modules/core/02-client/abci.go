package client

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/keeper"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
)

// BeginBlocker updates the localhost client with the height and time of the current block if it is active.
// Failures are logged and never halt the block.
func BeginBlocker(ctx sdk.Context, k *keeper.Keeper) {
	if _, found := k.GetClientState(ctx, exported.LocalhostClientID); !found {
		return
	}

	if status := k.GetClientStatus(ctx, exported.LocalhostClientID); status != exported.Active {
		return
	}

	header := localhost.NewHeader(types.GetSelfHeight(ctx), uint64(ctx.BlockTime().UnixNano()))
	clientMsgAny, err := types.PackClientMessage(header)
	if err != nil {
		k.Logger(ctx).Error("failed to pack localhost header", "height", header.Height.String(), "error", err.Error())
		return
	}

	if err := k.UpdateClient(ctx, exported.LocalhostClientID, clientMsgAny); err != nil {
		k.Logger(ctx).Error("failed to update localhost client", "height", header.Height.String(), "error", err.Error())
	}
}
