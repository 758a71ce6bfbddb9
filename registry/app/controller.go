package app

import (
	"github.com/JuinSoft/Celestium/registry/endpoint"
	"goji.io"
	"goji.io/pat"
)

// Controller binds the API
type Controller struct{}

// Bind registers the API routes.
func (c *Controller) Bind(
	mux *goji.Mux,
) {
	// Authenticated.
	mux.HandleFunc(pat.Post("/initialize"), endpoint.HandlerFor(endpoint.EndPtInitialize))
	mux.HandleFunc(pat.Post("/assets"), endpoint.HandlerFor(endpoint.EndPtMintAsset))
	mux.HandleFunc(pat.Post("/assets/:asset/transfer"), endpoint.HandlerFor(endpoint.EndPtTransferAsset))
	mux.HandleFunc(pat.Post("/assets/:asset/price"), endpoint.HandlerFor(endpoint.EndPtSetAssetPrice))
	mux.HandleFunc(pat.Post("/balances/:holder/fund"), endpoint.HandlerFor(endpoint.EndPtFundBalance))

	// Public.
	mux.HandleFunc(pat.Get("/assets"), endpoint.HandlerFor(endpoint.EndPtListAssets))
	mux.HandleFunc(pat.Get("/assets/:asset"), endpoint.HandlerFor(endpoint.EndPtRetrieveAsset))
	mux.HandleFunc(pat.Get("/assets/:asset/operations"), endpoint.HandlerFor(endpoint.EndPtListAssetOperations))
	mux.HandleFunc(pat.Get("/owners/:owner/assets"), endpoint.HandlerFor(endpoint.EndPtListOwnerAssets))
	mux.HandleFunc(pat.Get("/creators/:creator/assets"), endpoint.HandlerFor(endpoint.EndPtListCreatorAssets))
	mux.HandleFunc(pat.Get("/balances/:holder"), endpoint.HandlerFor(endpoint.EndPtRetrieveBalance))
}
