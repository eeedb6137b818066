package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrisense/crop-advisor/internal/model"
)

var (
	predictN        float64
	predictP        float64
	predictK        float64
	predictTemp     float64
	predictHumidity float64
	predictPH       float64
	predictRainfall float64
	predictState    string
	predictDistrict string
	predictLand     float64
	predictMode     string
	predictNoStore  bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Rank crops for the given soil and climate conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rec, err := newRecommender(ctx)
		if err != nil {
			return err
		}

		req := model.PredictRequest{
			Features: model.Features{
				Nitrogen:    predictN,
				Phosphorus:  predictP,
				Potassium:   predictK,
				Temperature: predictTemp,
				Humidity:    predictHumidity,
				PH:          predictPH,
				Rainfall:    predictRainfall,
			},
			State:         predictState,
			District:      predictDistrict,
			LandSizeAcres: predictLand,
			Mode:          model.RankMode(predictMode),
		}

		result, err := rec.Predict(ctx, req)
		if err != nil {
			return eris.Wrap(err, "predict")
		}

		if !predictNoStore {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err := st.CreateRun(ctx, req, result)
			if err != nil {
				zap.L().Warn("failed to store run", zap.Error(err))
			} else {
				zap.L().Info("run stored", zap.String("run_id", run.ID))
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	predictCmd.Flags().Float64VarP(&predictN, "nitrogen", "N", 0, "soil nitrogen (kg/ha, 0-140)")
	predictCmd.Flags().Float64VarP(&predictP, "phosphorus", "P", 0, "soil phosphorus (kg/ha, 0-145)")
	predictCmd.Flags().Float64VarP(&predictK, "potassium", "K", 0, "soil potassium (kg/ha, 0-205)")
	predictCmd.Flags().Float64Var(&predictTemp, "temperature", 25, "temperature (Celsius, 0-50)")
	predictCmd.Flags().Float64Var(&predictHumidity, "humidity", 70, "relative humidity (%, 0-100)")
	predictCmd.Flags().Float64Var(&predictPH, "ph", 6.5, "soil pH (3-10)")
	predictCmd.Flags().Float64Var(&predictRainfall, "rainfall", 100, "rainfall (mm, 0-500)")
	predictCmd.Flags().StringVar(&predictState, "state", "", "state for regional yield/price/cost lookup")
	predictCmd.Flags().StringVar(&predictDistrict, "district", "", "district for regional lookup")
	predictCmd.Flags().Float64Var(&predictLand, "land", 1, "land size in acres")
	predictCmd.Flags().StringVar(&predictMode, "mode", "", "ranking mode: suitability, profit or balanced (default balanced)")
	predictCmd.Flags().BoolVar(&predictNoStore, "no-store", false, "skip persisting the run")
	rootCmd.AddCommand(predictCmd)
}
