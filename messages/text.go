// seehuhn.de/go/icon - render 3D objects to icon images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package messages

import "seehuhn.de/go/icon"

var english = map[string]string{
	icon.MsgNoRenderers:      "The copy of %[1]v contains nothing that can be rendered.",
	icon.MsgInvalidBounds:    "Could not determine the size of %[1]v, a small default box is used.",
	icon.MsgFullyTransparent: "Nothing of %[1]v is visible, a transparent %[2]vx%[2]v icon is produced.",
	icon.MsgInternalError:    "Internal error while generating the icon for %[1]v: %[2]v",
	icon.MsgNothingCombined:  "There are no active objects to capture.",
	icon.MsgComplete:         "Icon saved to %[1]v.",
	icon.MsgFailed:           "Could not generate an icon for %[1]v.",
	icon.MsgError:            "Error while generating the icon for %[1]v: %[2]v",
	icon.MsgDirectoryError:   "Could not create the directory %[1]v: %[2]v",
	icon.MsgSaveError:        "Could not save %[1]v: %[2]v",
	icon.MsgProgressTitle:    "Generating icons",
	icon.MsgProcessing:       "Processing %[1]v... (%[2]v/%[3]v)",
	icon.MsgFinalizing:       "Finishing %[1]v",
	icon.MsgCombined:         "combined icon",
}

var korean = map[string]string{
	icon.MsgNoRenderers:      "%[1]v의 복제본에 렌더링할 수 있는 것이 없습니다.",
	icon.MsgInvalidBounds:    "%[1]v의 크기를 알 수 없어 기본 크기를 사용합니다.",
	icon.MsgFullyTransparent: "%[1]v이(가) 보이지 않습니다. 투명한 %[2]vx%[2]v 아이콘을 생성합니다.",
	icon.MsgInternalError:    "%[1]v의 아이콘 생성 중 내부 오류: %[2]v",
	icon.MsgNothingCombined:  "캡처할 활성 오브젝트가 없습니다.",
	icon.MsgComplete:         "아이콘을 %[1]v에 저장했습니다.",
	icon.MsgFailed:           "%[1]v의 아이콘을 생성하지 못했습니다.",
	icon.MsgError:            "%[1]v의 아이콘 생성 중 오류: %[2]v",
	icon.MsgDirectoryError:   "디렉터리 %[1]v을(를) 만들 수 없습니다: %[2]v",
	icon.MsgSaveError:        "%[1]v을(를) 저장할 수 없습니다: %[2]v",
	icon.MsgProgressTitle:    "아이콘 생성 중",
	icon.MsgProcessing:       "%[1]v 처리 중... (%[2]v/%[3]v)",
	icon.MsgFinalizing:       "%[1]v 마무리 중",
	icon.MsgCombined:         "결합 아이콘",
}

var japanese = map[string]string{
	icon.MsgNoRenderers:      "%[1]vの複製にレンダリングできるものがありません。",
	icon.MsgInvalidBounds:    "%[1]vのサイズを特定できないため、既定のサイズを使用します。",
	icon.MsgFullyTransparent: "%[1]vは表示されません。透明な%[2]vx%[2]vのアイコンを生成します。",
	icon.MsgInternalError:    "%[1]vのアイコン生成中に内部エラー: %[2]v",
	icon.MsgNothingCombined:  "キャプチャするアクティブなオブジェクトがありません。",
	icon.MsgComplete:         "アイコンを%[1]vに保存しました。",
	icon.MsgFailed:           "%[1]vのアイコンを生成できませんでした。",
	icon.MsgError:            "%[1]vのアイコン生成中にエラー: %[2]v",
	icon.MsgDirectoryError:   "ディレクトリ%[1]vを作成できません: %[2]v",
	icon.MsgSaveError:        "%[1]vを保存できません: %[2]v",
	icon.MsgProgressTitle:    "アイコンを生成中",
	icon.MsgProcessing:       "%[1]vを処理中... (%[2]v/%[3]v)",
	icon.MsgFinalizing:       "%[1]vを仕上げ中",
	icon.MsgCombined:         "結合アイコン",
}
